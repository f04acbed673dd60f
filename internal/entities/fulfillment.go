package entities

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/inventory"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
)

var stockStatuses = []string{"sellable", "sellable", "sellable", "damaged", "quarantine", "expired"}

func generateInventoryLevels(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	products, err := t.Pools.Require("products")
	if err != nil {
		return err
	}
	locations, err := t.Pools.Require("locations")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		productID := products.Pick()
		locationID := locations.Pick()
		onHand := g.IntRange(0, 500)
		reserved := g.IntRange(0, min(50, onHand))

		row := database.Row{
			"product_id":        productID,
			"location_id":       locationID,
			"batch_number":      g.Maybe(0.5, func() interface{} { return fmt.Sprintf("BATCH-%d", g.IntRange(1000, 9999)) }),
			"serial_number":     g.Maybe(0.2, func() interface{} { return fmt.Sprintf("SN-%d", g.IntRange(100000, 999999)) }),
			"expiry_date":       g.Maybe(0.3, func() interface{} { return seeder.Date(g.Future(365)) }),
			"quantity_on_hand":  onHand,
			"quantity_reserved": reserved,
			"stock_status":      seeder.Choice(g, stockStatuses),
			"aisle_bin_slot": g.Maybe(0.6, func() interface{} {
				return fmt.Sprintf("A%d-B%d-S%d", g.IntRange(1, 10), g.IntRange(1, 20), g.IntRange(1, 50))
			}),
			"last_counted_at": g.Maybe(0.5, func() interface{} { return g.Timestamp(30) }),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

// movementGenerator samples Count stock lines and runs the balance engine
// over each of them.
func movementGenerator(opts InventoryOptions) seeder.GenerateFunc {
	return func(ctx context.Context, t *seeder.Task) error {
		g := t.Gen
		lines, err := t.Pools.Optional("inventory_levels")
		if err != nil {
			return err
		}
		transactions, err := t.Pools.Optional("transactions")
		if err != nil {
			return err
		}

		ledger := inventory.NewSQLLedger(t.Store, t.Insert, opts.BalanceUpdates)
		engine := inventory.NewEngine(ledger, g, inventory.Config{
			OutProbability: opts.OutProbability,
			StepCap:        opts.StepCap,
		}, *t.Log())

		decorate := func(m *inventory.Movement) {
			m.ID = g.UUID()
			m.TransactionID = transactions.PickOrAbsent(0.3)
			m.CreatedAt = g.Timestamp(180)
			m.UpdatedAt = g.Timestamp(30)
		}

		for _, lineID := range lines.PickUpTo(t.Count) {
			steps := g.IntRange(opts.MinMovements, opts.MaxMovements)
			if _, err := engine.Run(ctx, lineID, steps, decorate); err != nil {
				return err
			}
		}
		return nil
	}
}

var (
	shipmentStatuses = []string{"pending", "processing", "shipped", "shipped", "in_transit", "delivered", "delivered"}
	carriers         = []string{"Correios", "Jadlog", "Total Express", "Azul Cargo", "Loggi", "Sequoia"}
	carrierServices  = []string{"SEDEX", "PAC", "Expresso", "Econômico", "Same Day"}
	packageTypes     = []string{"box", "envelope", "tube", "pallet"}
)

// invoiceKey returns a 44 digit electronic invoice access key.
func invoiceKey(g *seeder.GenerationContext) string {
	var b strings.Builder
	b.WriteByte(byte('1' + g.Intn(9)))
	for i := 1; i < 44; i++ {
		b.WriteByte(byte('0' + g.Intn(10)))
	}
	return b.String()
}

func generateShipments(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	orders, err := t.Pools.Require("orders")
	if err != nil {
		return err
	}
	locations, err := t.Pools.Optional("locations")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		id := g.UUID()
		orderID := orders.Pick()
		status := seeder.Choice(g, shipmentStatuses)
		dispatched := status != "pending" && status != "processing"

		row := database.Row{
			"order_id":        orderID,
			"location_id":     locations.PickOrAbsent(0.2),
			"status":          status,
			"carrier_company": seeder.Choice(g, carriers),
			"carrier_service": seeder.Choice(g, carrierServices),
		}
		row["tracking_number"] = nil
		row["tracking_url"] = nil
		if dispatched {
			row["tracking_number"] = fmt.Sprintf("%s%dBR", seeder.Choice(g, []string{"BR", "SS", "LB"}), g.IntRange(100000000, 999999999))
			row["tracking_url"] = "https://tracking.example.com/" + id
		}
		row["weight_g"] = g.IntRange(100, 30000)
		row["height_mm"] = g.IntRange(50, 500)
		row["width_mm"] = g.IntRange(100, 600)
		row["depth_mm"] = g.IntRange(50, 400)
		row["package_type"] = seeder.Choice(g, packageTypes)
		row["shipping_label_url"] = nil
		if status != "pending" {
			row["shipping_label_url"] = "https://labels.example.com/" + id + ".pdf"
		}
		row["invoice_url"] = nil
		row["invoice_key"] = nil
		if dispatched {
			row["invoice_url"] = "https://invoices.example.com/" + id + ".pdf"
			row["invoice_key"] = invoiceKey(g)
		}
		row["cost_amount"] = g.Amount(10, 200)
		row["insurance_amount"] = g.Maybe(0.3, func() interface{} { return g.Amount(0, 50) })
		row["estimated_delivery_at"] = nil
		if status != "delivered" {
			row["estimated_delivery_at"] = seeder.Stamp(g.Future(7))
		}
		row["shipped_at"] = nil
		if dispatched {
			row["shipped_at"] = g.Timestamp(60)
		}
		row["delivered_at"] = nil
		if status == "delivered" {
			row["delivered_at"] = g.Timestamp(30)
		}
		row["metadata"] = "{}"
		row["customs_info"] = nil

		if err := t.Create(ctx, id, audit(g, row, 90)); err != nil {
			return err
		}
	}
	return nil
}

func generateShipmentItems(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	shipments, err := t.Pools.Optional("shipments")
	if err != nil {
		return err
	}

	for _, shipmentID := range shipments.IDs() {
		n := g.IntRange(1, 5)
		for i := 0; i < n; i++ {
			row := database.Row{
				"shipment_id":   shipmentID,
				"order_item_id": g.UUID(),
				"quantity":      g.IntRange(1, 5),
				"batch_number":  g.Maybe(0.5, func() interface{} { return fmt.Sprintf("BATCH-%d", g.IntRange(1000, 9999)) }),
			}
			serials := make([]string, g.IntRange(0, 3))
			for j := range serials {
				serials[j] = fmt.Sprintf("SN-%d", g.IntRange(100000, 999999))
			}
			row["serial_numbers"] = seeder.JSON(serials)
			if err := t.Create(ctx, g.UUID(), audit(g, row, 90)); err != nil {
				return err
			}
		}
	}
	return nil
}

var shipmentLadder = []struct{ status, description string }{
	{"object_posted", "Objeto postado"},
	{"in_transit", "Objeto em trânsito - por favor aguarde"},
	{"out_for_delivery", "Objeto saiu para entrega"},
	{"delivered", "Objeto entregue ao destinatário"},
	{"delivery_failed", "Tentativa de entrega não realizada"},
	{"returned", "Objeto devolvido ao remetente"},
}

// generateShipmentEvents walks each shipment up the tracking ladder, one
// to six steps, with later events happening closer to the anchor.
func generateShipmentEvents(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	shipments, err := t.Pools.Optional("shipments")
	if err != nil {
		return err
	}

	for _, shipmentID := range shipments.IDs() {
		n := g.IntRange(1, len(shipmentLadder))
		for i := 0; i < n; i++ {
			step := shipmentLadder[min(i, len(shipmentLadder)-1)]
			row := database.Row{
				"shipment_id": shipmentID,
				"status":      step.status,
				"description": step.description,
				"location":    fmt.Sprintf("%s, %s", f.City(), f.StateAbbr()),
				"happened_at": g.Timestamp(90 - i*5),
				"raw_data":    seeder.JSON(map[string]string{"source": "carrier_api"}),
			}
			if err := t.Create(ctx, g.UUID(), audit(g, row, 90)); err != nil {
				return err
			}
		}
	}
	return nil
}
