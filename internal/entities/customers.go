package entities

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
)

var groupSeeds = []struct {
	name, code, description string
	discount                float64
}{
	{"VIP", "vip", "Clientes VIP com benefícios exclusivos", 15},
	{"Premium", "premium", "Clientes premium com descontos especiais", 10},
	{"Regular", "regular", "Clientes regulares", 0},
	{"Atacado", "wholesale", "Clientes de atacado", 20},
	{"Funcionários", "employees", "Funcionários da empresa", 25},
	{"Parceiros", "partners", "Parceiros comerciais", 12},
	{"Estudantes", "students", "Estudantes com desconto", 8},
	{"Idosos", "seniors", "Clientes acima de 60 anos", 5},
	{"Novos", "new", "Novos clientes", 5},
	{"Corporativo", "corporate", "Clientes corporativos", 18},
}

func generateCustomerGroups(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	shops, err := t.Pools.Require("shops")
	if err != nil {
		return err
	}

	for _, grp := range limit(groupSeeds, t.Count) {
		minOrder := 0.0
		if grp.code == "wholesale" {
			minOrder = 500
		}
		row := database.Row{
			"shop_id":                     shops.Pick(),
			"name":                        grp.name,
			"code":                        grp.code,
			"description":                 grp.description,
			"type":                        "manual",
			"rules":                       "[]",
			"default_discount_percentage": seeder.Money(grp.discount),
			"price_list_id":               nil,
			"tax_class":                   nil,
			"allowed_payment_methods":     seeder.JSON([]string{"credit_card", "pix", "boleto"}),
			"min_order_amount":            seeder.Money(minOrder),
			"metadata":                    seeder.JSON(map[string]string{"tier": grp.code}),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

var customerTags = []string{"vip", "frequent", "new", "wholesale", "online"}

func generateCustomers(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	groups, err := t.Pools.Optional("customer_groups")
	if err != nil {
		return err
	}

	for i := 0; i < t.Count; i++ {
		kind := seeder.Choice(g, []string{"individual", "individual", "individual", "company"})
		company := kind == "company"

		row := database.Row{"type": kind, "email": f.Email(), "phone": f.Phone()}
		attributes := map[string]string{}
		if company {
			row["first_name"] = nil
			row["last_name"] = nil
			row["company_name"] = f.Company()
			row["tax_id"] = f.CNPJ()
			row["tax_id_type"] = "cnpj"
			row["state_tax_id"] = g.Maybe(0.5, func() interface{} { return fmt.Sprintf("%09d", g.Intn(1000000000)) })
			attributes["registered_address"] = f.Address()
		} else {
			row["first_name"] = f.FirstName()
			row["last_name"] = f.LastName()
			row["company_name"] = nil
			row["tax_id"] = f.CPF()
			row["tax_id_type"] = "cpf"
			row["state_tax_id"] = nil
			attributes["birth_date"] = g.BirthDate(18, 80)
		}

		row["status"] = seeder.Choice(g, activeMostly)
		row["currency"] = currency
		row["language"] = "pt"
		row["tags"] = seeder.JSON(nonNil(seeder.Sample(g, customerTags, g.IntRange(0, 2))))
		row["accepts_marketing"] = g.Bool()
		row["customer_group_id"] = groups.PickOrAbsent(0.6)
		row["total_spent"] = g.Amount(0, 50000)
		row["orders_count"] = g.IntRange(0, 100)
		row["last_order_at"] = g.Maybe(0.7, func() interface{} { return g.Timestamp(60) })
		row["notes"] = g.Maybe(0.3, func() interface{} { return f.Paragraph(1) })
		row["metadata"] = seeder.JSON(map[string]string{"source": seeder.Choice(g, []string{"web", "store", "referral", "ads"})})
		row["custom_attributes"] = seeder.JSON(attributes)

		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

// generateCustomerAddresses gives every customer one to three addresses. The
// first one is the default shipping address.
func generateCustomerAddresses(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	customers, err := t.Pools.Optional("customers")
	if err != nil {
		return err
	}

	for _, customerID := range customers.IDs() {
		n := g.IntRange(1, 3)
		for i := 0; i < n; i++ {
			kind := "shipping"
			if i > 0 {
				kind = seeder.Choice(g, []string{"shipping", "billing"})
			}
			row := database.Row{
				"customer_id":   customerID,
				"type":          kind,
				"is_default":    i == 0,
				"first_name":    f.FirstName(),
				"last_name":     f.LastName(),
				"company":       g.Maybe(0.2, func() interface{} { return f.Company() }),
				"address1":      f.Street() + ", " + f.BuildingNumber(),
				"address2":      g.Maybe(0.5, func() interface{} { return fmt.Sprintf("Apto %d", g.IntRange(1, 500)) }),
				"city":          f.City(),
				"province_code": f.StateAbbr(),
				"country_code":  "BR",
				"postal_code":   f.Postcode(),
				"phone":         g.Maybe(0.7, func() interface{} { return f.Phone() }),
				"metadata":      "{}",
			}
			if err := t.Create(ctx, g.UUID(), audit(g, row, 300)); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateMemberships enrols 30% of customers in one or two groups.
func generateMemberships(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	customers, err := t.Pools.Optional("customers")
	if err != nil {
		return err
	}
	groups, err := t.Pools.Optional("customer_groups")
	if err != nil {
		return err
	}

	for _, customerID := range customers.Share(0.3) {
		for _, groupID := range groups.PickUpTo(g.IntRange(1, 2)) {
			row := database.Row{
				"customer_id":       customerID,
				"customer_group_id": groupID,
			}
			if err := t.Link(ctx, audit(g, row, 300)); err != nil {
				return err
			}
		}
	}
	return nil
}
