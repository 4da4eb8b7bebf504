package models

import (
	"strconv"

	"github.com/MKhiriev/go-settings-builder/internal/settings"
)

// Milk is the kind of milk a cheese is made from.
type Milk int

const (
	MilkCow Milk = iota
	MilkGoat
	MilkSheep
)

// milkNames is indexed by Milk.
var milkNames = []string{"Cow", "Goat", "Sheep"}

func (m Milk) String() string {
	if m >= 0 && int(m) < len(milkNames) {
		return milkNames[m]
	}
	return "Milk(" + strconv.Itoa(int(m)) + ")"
}

// CheeseSettings is the root settings document. Sources address its fields
// with paths such as "Cheese:Origin:Location".
type CheeseSettings struct {
	Cheese *Cheese
}

// Cheese describes the cheese being configured. Every field is optional: nil
// means the field was not set by any source.
type Cheese struct {
	Name     *string
	Price    *float64
	Milk     *Milk
	Flavours []string
	Origin   *Origin
}

// Origin is the farm a cheese comes from.
type Origin struct {
	Name     *string
	Location *string
}

var OriginDescriptor = settings.Describe[Origin]("Origin",
	settings.String("Name", func(o *Origin) **string { return &o.Name }),
	settings.String("Location", func(o *Origin) **string { return &o.Location }),
)

var CheeseDescriptor = settings.Describe[Cheese]("Cheese",
	settings.String("Name", func(c *Cheese) **string { return &c.Name }),
	settings.Float("Price", func(c *Cheese) **float64 { return &c.Price }),
	settings.Enum("Milk", func(c *Cheese) **Milk { return &c.Milk }, milkNames...),
	settings.Strings("Flavours", func(c *Cheese) *[]string { return &c.Flavours }),
	settings.Nested("Origin", func(c *Cheese) **Origin { return &c.Origin }, OriginDescriptor),
)

var CheeseSettingsDescriptor = settings.Describe[CheeseSettings]("CheeseSettings",
	settings.Nested("Cheese", func(s *CheeseSettings) **Cheese { return &s.Cheese }, CheeseDescriptor),
)
