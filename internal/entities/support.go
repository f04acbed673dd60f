package entities

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
)

var (
	inquiryTypes       = []string{"question", "complaint", "return_request", "exchange", "warranty", "order_status", "payment_issue"}
	inquiryStatuses    = []string{"new", "open", "pending_customer", "pending_internal", "resolved", "closed"}
	inquiryPriorities  = []string{"low", "normal", "normal", "high", "urgent"}
	inquirySources     = []string{"web_form", "email", "chat", "whatsapp", "phone", "marketplace"}
	inquiryDepartments = []string{"support", "sales", "logistics", "finance"}
)

// generateInquiries writes support tickets. Requester contact data is a
// snapshot taken at creation and does not follow later customer edits.
func generateInquiries(ctx context.Context, t *seeder.Task) error {
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
	orders, err := t.Pools.Optional("orders")
	if err != nil {
		return err
	}
	products, err := t.Pools.Optional("products")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		status := seeder.Choice(g, inquiryStatuses)
		created := g.Past(90)

		row := database.Row{
			"protocol_number": fmt.Sprintf("INQ-2024%06d", i+1),
			"type":            seeder.Choice(g, inquiryTypes),
			"status":          status,
			"priority":        seeder.Choice(g, inquiryPriorities),
			"source":          seeder.Choice(g, inquirySources),
			"customer_id":     customers.PickOrAbsent(0.3),
			"requester_data": seeder.JSON(map[string]string{
				"name":  f.Name(),
				"email": f.Email(),
				"phone": f.CellPhone(),
			}),
			"department":         seeder.Choice(g, inquiryDepartments),
			"assigned_staff_id":  nil,
			"related_order_id":   nil,
			"related_product_id": nil,
			"subject":            f.Sentence(g.IntRange(4, 8)),
			"tags":               seeder.JSON(nonNil(seeder.Sample(g, []string{"urgent", "vip", "first_contact", "recurring", "escalated"}, g.IntRange(0, 2)))),
			"sla_due_at":         seeder.Stamp(created.Add(48 * time.Hour)),
			"resolved_at":        nil,
			"metadata":           "{}",
		}
		if g.Chance(0.4) {
			row["assigned_staff_id"] = users.PickOrAbsent(0)
		}
		if g.Chance(0.5) {
			row["related_order_id"] = orders.PickOrAbsent(0.7)
		}
		if g.Chance(0.3) {
			row["related_product_id"] = products.PickOrAbsent(0.8)
		}
		if status == "resolved" || status == "closed" {
			row["resolved_at"] = seeder.Stamp(g.After(created, 72))
		}

		audit(g, row, 90)
		row["created_at"] = seeder.Stamp(created)
		if err := t.Create(ctx, g.UUID(), row); err != nil {
			return err
		}
	}
	return nil
}

var senderTypes = []string{"customer", "customer", "staff", "staff", "bot"}

func generateInquiryMessages(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	inquiries, err := t.Pools.Optional("inquiries")
	if err != nil {
		return err
	}
	users, err := t.Pools.Optional("users")
	if err != nil {
		return err
	}

	for _, inquiryID := range inquiries.IDs() {
		n := g.IntRange(1, 8)
		for i := 0; i < n; i++ {
			sender := seeder.Choice(g, senderTypes)
			row := database.Row{
				"inquiry_id":  inquiryID,
				"sender_type": sender,
				"sender_id":   nil,
				"message":     f.Paragraph(g.IntRange(1, 3)),
				"is_internal": sender == "staff" && g.Chance(0.2),
				"read_at":     g.Maybe(0.6, func() interface{} { return g.Timestamp(30) }),
			}
			if sender == "staff" {
				row["sender_id"] = users.PickOrAbsent(0)
			}
			attachments := make([]map[string]string, 0)
			if g.Chance(0.2) {
				attachments = append(attachments, map[string]string{
					"url":  f.ImageURL(800, 600),
					"name": fmt.Sprintf("anexo_%d.jpg", i+1),
				})
			}
			row["attachments"] = seeder.JSON(attachments)

			if err := t.Create(ctx, g.UUID(), audit(g, row, 90)); err != nil {
				return err
			}
		}
	}
	return nil
}

var (
	ratings       = []int{1, 2, 3, 4, 5}
	ratingWeights = []float64{5, 10, 15, 30, 40}
)

// generateReviews skews ratings towards four and five stars.
func generateReviews(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	orders, err := t.Pools.Optional("orders")
	if err != nil {
		return err
	}
	customers, err := t.Pools.Optional("customers")
	if err != nil {
		return err
	}
	products, err := t.Pools.Require("products")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		photos := make([]string, g.IntRange(0, 3))
		for j := range photos {
			photos[j] = f.ImageURL(800, 800)
		}

		row := database.Row{
			"order_id":          orders.PickOrAbsent(0.2),
			"customer_id":       customers.PickOrAbsent(0.1),
			"product_id":        products.Pick(),
			"rating":            seeder.Weighted(g, ratings, ratingWeights),
			"title":             g.Maybe(0.7, func() interface{} { return f.Title() }),
			"body":              g.Maybe(0.8, func() interface{} { return f.Text(400) }),
			"photos":            seeder.JSON(photos),
			"verified_purchase": g.Chance(0.7),
			"is_approved":       g.Chance(0.9),
			"helpful_votes":     g.IntRange(0, 50),
			"reply_from_store":  g.Maybe(0.2, func() interface{} { return f.Sentence(10) }),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 180)); err != nil {
			return err
		}
	}
	return nil
}
