package entities

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
	"github.com/shopspring/decimal"
)

var checkoutStatuses = []string{"open", "open", "completed", "abandoned", "expired"}

type checkoutItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// generateCheckouts builds carts whose totals satisfy
// subtotal + tax + shipping - discounts = total, each term rounded to cents.
func generateCheckouts(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	shops, err := t.Pools.Require("shops")
	if err != nil {
		return err
	}
	products, err := t.Pools.Require("products")
	if err != nil {
		return err
	}
	users, err := t.Pools.Optional("users")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		id := g.UUID()

		n := g.IntRange(1, 5)
		items := make([]checkoutItem, 0, n)
		subtotal := decimal.Zero
		for j := 0; j < n; j++ {
			productID := products.Pick()
			qty := g.IntRange(1, 3)
			price := g.Amount(10, 500)
			line := price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
			subtotal = subtotal.Add(line)
			items = append(items, checkoutItem{
				ProductID: productID,
				Quantity:  qty,
				UnitPrice: price.InexactFloat64(),
				Total:     line.InexactFloat64(),
			})
		}
		subtotal = subtotal.Round(2)
		tax := seeder.Rate(subtotal, 0.1)
		shipping := g.Amount(0, 50)
		discounts := seeder.Rate(subtotal, g.Uniform(0, 0.15))
		total := subtotal.Add(tax).Add(shipping).Sub(discounts).Round(2)

		status := seeder.Choice(g, checkoutStatuses)
		row := database.Row{
			"shop_id":          shops.Pick(),
			"token":            g.UUID(),
			"user_id":          users.PickOrAbsent(0.4),
			"email":            f.Email(),
			"items":            seeder.JSON(items),
			"shipping_address": seeder.JSON(address(f, true)),
			"billing_address": g.Maybe(0.5, func() interface{} {
				return seeder.JSON(address(f, true))
			}),
			"shipping_line": seeder.JSON(map[string]interface{}{
				"method": seeder.Choice(g, []string{"standard", "express", "pickup"}),
				"price":  shipping.InexactFloat64(),
			}),
			"applied_discount_codes": discountCodes(discounts),
			"currency":               currency,
			"subtotal_price":         subtotal,
			"total_tax":              tax,
			"total_shipping":         shipping,
			"total_discounts":        discounts,
			"total_price":            total,
			"status":                 status,
			"metadata":               "{}",
		}
		row["reservation_expires_at"] = nil
		if status == "open" {
			row["reservation_expires_at"] = seeder.Stamp(g.Future(1))
		}
		row["completed_at"] = nil
		if status == "completed" {
			row["completed_at"] = g.Timestamp(30)
		}
		row["recovery_url"] = nil
		if status == "abandoned" {
			row["recovery_url"] = "https://checkout.example.com/recover/" + id
		}
		if err := t.Create(ctx, id, audit(g, row, 60)); err != nil {
			return err
		}
	}
	return nil
}

var (
	transactionTypes    = []string{"sale", "sale", "sale", "purchase", "transfer", "return", "adjustment"}
	transactionStatuses = []string{"draft", "pending", "completed", "completed", "completed", "cancelled"}
	transactionChannels = []string{"web", "store", "mobile", "api"}
)

// generateTransactions writes ledger headers where
// total_items + total_shipping - total_discount = total_net.
func generateTransactions(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	customers, err := t.Pools.Optional("customers")
	if err != nil {
		return err
	}
	users, err := t.Pools.Optional("users")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		items := g.Amount(50, 5000)
		shipping := decimal.Zero
		if g.Chance(0.7) {
			shipping = g.Amount(0, 100)
		}
		discount := decimal.Zero
		if g.Chance(0.5) {
			discount = seeder.Rate(items, g.Uniform(0, 0.2))
		}
		net := items.Add(shipping).Sub(discount).Round(2)

		row := database.Row{
			"type":            seeder.Choice(g, transactionTypes),
			"status":          seeder.Choice(g, transactionStatuses),
			"channel":         seeder.Choice(g, transactionChannels),
			"customer_id":     customers.PickOrAbsent(0.1),
			"supplier_id":     nil,
			"staff_id":        users.PickOrAbsent(0.2),
			"currency":        currency,
			"total_items":     items,
			"total_shipping":  shipping,
			"total_discount":  discount,
			"total_net":       net,
			"shipping_method": seeder.Choice(g, []interface{}{"standard", "express", "pickup", nil}),
			"shipping_address": g.Maybe(0.7, func() interface{} {
				return seeder.JSON(address(f, false))
			}),
			"billing_address": g.Maybe(0.5, func() interface{} {
				return seeder.JSON(address(f, false))
			}),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

// generateTransactionItems writes one to five lines per transaction. Name
// and SKU are snapshots drawn independently of the referenced product.
func generateTransactionItems(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	transactions, err := t.Pools.Optional("transactions")
	if err != nil {
		return err
	}
	products, err := t.Pools.Optional("products")
	if err != nil {
		return err
	}

	for _, transactionID := range transactions.IDs() {
		n := g.IntRange(1, 5)
		for i := 0; i < n; i++ {
			productID := products.PickOrAbsent(0.05)
			qty := g.IntRange(1, 10)
			unitPrice := g.Amount(10, 1000)
			unitCost := seeder.Rate(unitPrice, g.Uniform(0.4, 0.7))
			taxAmount := seeder.Rate(unitPrice.Mul(decimal.NewFromInt(int64(qty))), 0.1)

			row := database.Row{
				"transaction_id":      transactionID,
				"product_id":          productID,
				"sku_snapshot":        fmt.Sprintf("SKU-%d", g.IntRange(100000, 999999)),
				"name_snapshot":       f.Title() + " " + f.Title(),
				"quantity":            qty,
				"unit_price":          unitPrice,
				"unit_cost":           unitCost,
				"attributes_snapshot": seeder.JSON(map[string]string{"color": seeder.Choice(g, []string{"Preto", "Branco", "Azul"})}),
				"tax_details":         seeder.JSON(map[string]float64{"tax_rate": 0.1, "tax_amount": taxAmount.InexactFloat64()}),
			}
			if err := t.Create(ctx, g.UUID(), audit(g, row, 300)); err != nil {
				return err
			}
		}
	}
	return nil
}

var (
	orderStatuses       = []string{"open", "open", "confirmed", "processing", "completed", "cancelled"}
	paymentStatuses     = []string{"unpaid", "pending", "paid", "paid", "paid", "refunded"}
	fulfillmentStatuses = []string{"unfulfilled", "partial", "fulfilled", "fulfilled"}
	orderChannels       = []string{"web", "store", "mobile", "phone"}
	orderTags           = []string{"urgent", "gift", "fragile", "bulk"}
)

// generateOrders writes orders where
// subtotal - discounts + tax + shipping + tip = total. The customer snapshot
// is generated on its own and does not mirror the referenced customer.
func generateOrders(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	shops, err := t.Pools.Require("shops")
	if err != nil {
		return err
	}
	customers, err := t.Pools.Optional("customers")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		subtotal := g.Amount(50, 5000)
		discounts := seeder.Rate(subtotal, g.Uniform(0, 0.2))
		tax := seeder.Rate(subtotal, 0.1)
		shipping := g.Amount(0, 100)
		tip := decimal.Zero
		if g.Chance(0.1) {
			tip = g.Amount(0, 20)
		}
		total := subtotal.Sub(discounts).Add(tax).Add(shipping).Add(tip).Round(2)

		customerID := customers.PickOrAbsent(0.05)
		status := seeder.Choice(g, orderStatuses)
		snapshot := map[string]string{
			"name":  f.Name(),
			"email": f.Email(),
			"phone": f.Phone(),
		}

		row := database.Row{
			"order_number":       1000 + i,
			"idempotency_key":    g.UUID(),
			"channel":            seeder.Choice(g, orderChannels),
			"shop_id":            shops.Pick(),
			"customer_id":        customerID,
			"status":             status,
			"payment_status":     seeder.Choice(g, paymentStatuses),
			"fulfillment_status": seeder.Choice(g, fulfillmentStatuses),
			"currency":           currency,
			"subtotal_price":     subtotal,
			"total_discounts":    discounts,
			"total_tax":          tax,
			"total_shipping":     shipping,
			"total_tip":          tip,
			"total_price":        total,
			"tax_lines":          seeder.JSON([]map[string]interface{}{{"name": "ICMS", "rate": 0.1, "amount": tax.InexactFloat64()}}),
			"discount_codes":     discountCodes(discounts),
			"note":               g.Maybe(0.2, func() interface{} { return f.Paragraph(1) }),
			"tags":               seeder.JSON(nonNil(seeder.Sample(g, orderTags, g.IntRange(0, 2)))),
			"custom_attributes":  "[]",
			"metadata":           seeder.JSON(map[string]string{"source": "website"}),
			"customer_snapshot":  seeder.JSON(snapshot),
			"billing_address":    seeder.JSON(address(f, true)),
			"shipping_address":   seeder.JSON(address(f, true)),
		}
		audit(g, row, 365)
		row["cancelled_at"] = nil
		if status == "cancelled" {
			row["cancelled_at"] = g.Timestamp(60)
		}
		row["closed_at"] = nil
		if status == "completed" {
			row["closed_at"] = g.Timestamp(30)
		}
		if err := t.Create(ctx, g.UUID(), row); err != nil {
			return err
		}
	}
	return nil
}

var (
	paymentProviders = []string{"pagarme", "stripe", "mercadopago", "paypal", "pix_manual"}
	paymentMethods   = []string{"credit_card", "debit_card", "pix", "boleto", "cash"}
	paymentStates    = []string{"pending", "authorized", "captured", "captured", "captured", "failed", "voided"}
	riskLevels       = []string{"low", "low", "medium", "high"}
)

func generatePayments(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	transactions, err := t.Pools.Require("transactions")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		transactionID := transactions.Pick()
		amount := g.Amount(20, 3000)
		status := seeder.Choice(g, paymentStates)
		authorized := status == "authorized" || status == "captured"

		row := database.Row{
			"transaction_id":          transactionID,
			"amount":                  amount,
			"currency":                currency,
			"provider":                seeder.Choice(g, paymentProviders),
			"method":                  seeder.Choice(g, paymentMethods),
			"installments":            seeder.Choice(g, []int{1, 1, 1, 2, 3, 6, 10, 12}),
			"status":                  status,
			"provider_transaction_id": "txn_" + g.UUID()[:8],
			"authorization_code":      nil,
			"payment_details": seeder.JSON(map[string]string{
				"card_brand":  seeder.Choice(g, []string{"visa", "mastercard", "elo"}),
				"last_digits": fmt.Sprintf("%d", g.IntRange(1000, 9999)),
			}),
			"risk_level": seeder.Choice(g, riskLevels),
		}
		if authorized {
			row["authorization_code"] = fmt.Sprintf("AUTH%d", g.IntRange(100000, 999999))
		}
		audit(g, row, 300)
		row["authorized_at"] = nil
		if authorized {
			row["authorized_at"] = g.Timestamp(300)
		}
		row["captured_at"] = nil
		if status == "captured" {
			row["captured_at"] = g.Timestamp(290)
		}
		row["voided_at"] = nil
		if status == "voided" {
			row["voided_at"] = g.Timestamp(280)
		}
		if err := t.Create(ctx, g.UUID(), row); err != nil {
			return err
		}
	}
	return nil
}

var (
	refundStatuses = []string{"pending", "approved", "processed", "rejected"}
	refundReasons  = []string{
		"Produto com defeito",
		"Produto diferente do anunciado",
		"Arrependimento",
		"Entrega atrasada",
		"Produto não recebido",
		"Duplicidade de cobrança",
		"Cancelamento do pedido",
	}
)

// generateRefunds refunds 10% of payments.
func generateRefunds(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	payments, err := t.Pools.Optional("payments")
	if err != nil {
		return err
	}
	users, err := t.Pools.Optional("users")
	if err != nil {
		return err
	}

	for _, paymentID := range payments.Share(0.1) {
		row := database.Row{
			"payment_id":         paymentID,
			"amount":             g.Amount(10, 500),
			"status":             seeder.Choice(g, refundStatuses),
			"reason":             seeder.Choice(g, refundReasons),
			"provider_refund_id": g.Maybe(0.7, func() interface{} { return "ref_" + g.UUID()[:8] }),
		}
		audit(g, row, 90)
		row["created_by"] = users.PickOrAbsent(0.3)
		if err := t.Create(ctx, g.UUID(), row); err != nil {
			return err
		}
	}
	return nil
}

func discountCodes(discounts decimal.Decimal) string {
	if discounts.IsPositive() {
		return seeder.JSON([]map[string]interface{}{{"code": "SAVE10", "amount": discounts.InexactFloat64()}})
	}
	return "[]"
}
