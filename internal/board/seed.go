package board

import (
	"fmt"

	"github.com/colonyops/toastboard/internal/core/catalog"
)

// Demo account seeded at startup so the dashboard can log in.
const (
	DemoName     = "Demo User"
	DemoEmail    = "demo@toastboard.local"
	DemoPassword = "toastboard"
)

var sampleProducts = []catalog.Product{
	{Name: "Espresso Machine", Description: "15 bar pump, steam wand", Price: 249.00, Category: "Kitchen"},
	{Name: "Pour-Over Kettle", Description: "Gooseneck, 1L", Price: 39.50, Category: "Kitchen"},
	{Name: "Burr Grinder", Description: "40 grind settings", Price: 129.99, Category: "Kitchen"},
	{Name: "Travel Mug", Description: "Insulated, 350ml", Price: 18.00, Category: "Accessories"},
}

// SampleProducts returns a copy of the demo catalog.
func SampleProducts() []catalog.Product {
	out := make([]catalog.Product, len(sampleProducts))
	copy(out, sampleProducts)
	return out
}

func (a *App) seed() error {
	if _, err := a.Accounts.register(DemoName, DemoEmail, DemoPassword); err != nil {
		return fmt.Errorf("seed demo account: %w", err)
	}
	a.Products.Seed(SampleProducts()...)
	return nil
}
