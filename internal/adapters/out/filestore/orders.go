package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// orderRecord mirrors one element of orders.json. Weight is decoded loosely
// because upstream exports it as either a number or a string; the normalizer
// owns the coercion and the warning, so the adapter only flattens it to text.
type orderRecord struct {
	OrderID     string `json:"orderId"`
	City        string `json:"city"`
	ZoneHint    string `json:"zoneHint"`
	Address     string `json:"address"`
	PaymentType string `json:"paymentType"`
	ProductType string `json:"productType"`
	Weight      any    `json:"weight"`
	Deadline    string `json:"deadline"`
}

func (r orderRecord) toDomain() order.RawOrder {
	return order.RawOrder{
		OrderID:     r.OrderID,
		City:        r.City,
		ZoneHint:    r.ZoneHint,
		Address:     r.Address,
		PaymentType: r.PaymentType,
		ProductType: r.ProductType,
		Weight:      weightText(r.Weight),
		Deadline:    r.Deadline,
	}
}

func weightText(w any) string {
	switch v := w.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// LoadRawOrders reads orders.json and returns the feed in file order.
func (s *Store) LoadRawOrders(_ context.Context) ([]order.RawOrder, error) {
	data, err := s.readInput(OrdersFile)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []orderRecord
	if err := dec.Decode(&records); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(OrdersFile, err)
	}

	raws := make([]order.RawOrder, 0, len(records))
	for _, r := range records {
		raws = append(raws, r.toDomain())
	}
	return raws, nil
}
