package settings

type milk int

const (
	cow milk = iota
	goat
	sheep
)

type origin struct {
	Name     *string
	Location *string
}

type cheese struct {
	Name     *string
	Price    *float64
	Milk     *milk
	Flavours []string
	Origin   *origin
}

type cheeseSettings struct {
	Cheese *cheese
}

var originDescriptor = Describe[origin]("Origin",
	String("Name", func(o *origin) **string { return &o.Name }),
	String("Location", func(o *origin) **string { return &o.Location }),
)

var cheeseDescriptor = Describe[cheese]("Cheese",
	String("Name", func(c *cheese) **string { return &c.Name }),
	Float("Price", func(c *cheese) **float64 { return &c.Price }),
	Enum("Milk", func(c *cheese) **milk { return &c.Milk }, "Cow", "Goat", "Sheep"),
	Strings("Flavours", func(c *cheese) *[]string { return &c.Flavours }),
	Nested("Origin", func(c *cheese) **origin { return &c.Origin }, originDescriptor),
)

var settingsDescriptor = Describe[cheeseSettings]("CheeseSettings",
	Nested("Cheese", func(s *cheeseSettings) **cheese { return &s.Cheese }, cheeseDescriptor),
)

func ptr[V any](v V) *V {
	return &v
}

// cheddar is the base value used across the tests.
func cheddar() *cheese {
	return &cheese{
		Name:     ptr("Cheddar"),
		Price:    ptr(0.99),
		Flavours: []string{"plain"},
		Origin:   &origin{Location: ptr("UK")},
	}
}
