package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
)

// addressSimilarityThreshold is the ratio at which two normalized addresses are
// treated as the same location during merging.
const addressSimilarityThreshold = 0.85

// MergeResult carries the deduplicated clean order set plus every warning the
// normalization and merging raised. Orders are sorted by id, warnings are
// deduplicated and sorted, so the result is stable across runs.
type MergeResult struct {
	Orders   []order.CleanOrder
	Warnings []string
}

// OrderMerger normalizes a raw order snapshot and collapses records sharing a
// canonical order id into one clean record each.
type OrderMerger struct {
	normalizer order.Normalizer
}

// NewOrderMerger creates a merger normalizing against the given zone index.
func NewOrderMerger(zones *zone.Index) OrderMerger {
	return OrderMerger{normalizer: order.NewNormalizer(zones)}
}

// Merge normalizes every raw order, groups them by canonical id, and merges
// each group into a single CleanOrder:
//
//   - scalar fields keep the first non-empty value encountered;
//   - the earliest known deadline wins;
//   - addresses are deduplicated by similarity, conflicts keep the first
//     distinct one and raise a warning;
//   - differing non-zero weights resolve to the maximum, the safe choice for
//     capacity planning, and raise a warning.
func (m OrderMerger) Merge(raws []order.RawOrder) MergeResult {
	var warnings []string

	groups := make(map[string][]order.CleanOrder, len(raws))
	groupOrder := make([]string, 0, len(raws))

	for _, raw := range raws {
		clean, w := m.normalizer.NormalizeOrder(raw)
		warnings = append(warnings, w...)

		if _, seen := groups[clean.OrderID]; !seen {
			groupOrder = append(groupOrder, clean.OrderID)
		}
		groups[clean.OrderID] = append(groups[clean.OrderID], clean)
	}

	orders := make([]order.CleanOrder, 0, len(groupOrder))
	for _, id := range groupOrder {
		group := groups[id]
		if len(group) > 1 {
			warnings = append(warnings, fmt.Sprintf("%s: %d duplicate records merged", id, len(group)))
		}

		merged, w := mergeGroup(id, group)
		warnings = append(warnings, w...)
		orders = append(orders, merged)
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })

	return MergeResult{Orders: orders, Warnings: dedupeSorted(warnings)}
}

// mergeGroup folds a group of same-id records into one, first record first.
func mergeGroup(id string, group []order.CleanOrder) (order.CleanOrder, []string) {
	var warnings []string

	merged := group[0]
	for _, next := range group[1:] {
		if merged.City == "" {
			merged.City = next.City
		}
		if merged.ZoneHint == "" {
			merged.ZoneHint = next.ZoneHint
		}
		if merged.PaymentType == "" {
			merged.PaymentType = next.PaymentType
		}
		if merged.ProductType == "" {
			merged.ProductType = next.ProductType
		}

		if next.Deadline != nil && (merged.Deadline == nil || next.Deadline.Before(*merged.Deadline)) {
			merged.Deadline = next.Deadline
		}

		switch {
		case next.Weight == 0:
		case merged.Weight == 0:
			merged.Weight = next.Weight
		case next.Weight != merged.Weight:
			merged.Weight = max(merged.Weight, next.Weight)
			warnings = append(warnings, fmt.Sprintf("%s: conflicting weight -> using %s",
				id, strconv.FormatFloat(merged.Weight, 'g', -1, 64)))
		}
	}

	merged.Address, warnings = mergeAddresses(id, group, warnings)

	return merged, warnings
}

// mergeAddresses collects the distinct addresses in a group. Distinct means not
// similar to any address already kept; a group with more than one distinct
// address is a conflict, resolved by keeping the first.
func mergeAddresses(id string, group []order.CleanOrder, warnings []string) (string, []string) {
	var distinct []string
	for _, o := range group {
		if o.Address == "" {
			continue
		}

		similar := false
		for _, kept := range distinct {
			if addressesSimilar(o.Address, kept) {
				similar = true
				break
			}
		}
		if !similar {
			distinct = append(distinct, o.Address)
		}
	}

	if len(distinct) == 0 {
		return "", warnings
	}
	if len(distinct) > 1 {
		warnings = append(warnings, fmt.Sprintf("%s: conflicting addresses [%s] -> kept '%s'",
			id, strings.Join(distinct, " | "), distinct[0]))
	}

	return distinct[0], warnings
}

// addressesSimilar reports whether two addresses describe the same location:
// one normalized key contains the other, or their similarity ratio reaches the
// address threshold.
func addressesSimilar(a, b string) bool {
	ak, bk := kernel.AddressKey(a), kernel.AddressKey(b)
	if ak == "" || bk == "" {
		return false
	}

	if strings.Contains(ak, bk) || strings.Contains(bk, ak) {
		return true
	}

	return kernel.SimilarityRatio(ak, bk) >= addressSimilarityThreshold
}

// dedupeSorted returns the unique warnings in lexical order.
func dedupeSorted(warnings []string) []string {
	seen := make(map[string]struct{}, len(warnings))
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
