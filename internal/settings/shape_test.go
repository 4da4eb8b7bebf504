package settings

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_AllFields(t *testing.T) {
	// Arrange
	env := map[string]string{
		"Cheese:Name":             "Gouda",
		"Cheese:Price":            "1.99",
		"Cheese:Milk":             "Goat",
		"Cheese:Flavours:0":       "nutty",
		"Cheese:Flavours:1":       "sweet",
		"Cheese:Origin:Location":  "Netherlands",
		"cheese:origin:name":      "De Boerderij",
		"PATH":                    "/usr/bin",
		"Cheese:Unknown":          "ignored",
		"Cheese:Name:Extra":       "ignored",
		"Cheese:Origin":           "ignored",
		"Cheese:Flavours":         "ignored",
		"Cheese:Flavours:0:Inner": "ignored",
	}

	// Act
	got, err := settingsDescriptor.Shape(env)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, got.Cheese)
	assert.Equal(t, "Gouda", *got.Cheese.Name)
	assert.Equal(t, 1.99, *got.Cheese.Price)
	assert.Equal(t, goat, *got.Cheese.Milk)
	assert.Equal(t, []string{"nutty", "sweet"}, got.Cheese.Flavours)
	require.NotNil(t, got.Cheese.Origin)
	assert.Equal(t, "Netherlands", *got.Cheese.Origin.Location)
	assert.Equal(t, "De Boerderij", *got.Cheese.Origin.Name)
}

func TestShape_DoubleUnderscoreSeparator(t *testing.T) {
	got, err := settingsDescriptor.Shape(map[string]string{
		"CHEESE__NAME":             "Brie",
		"CHEESE__FLAVOURS__0":      "creamy",
		"CHEESE__ORIGIN__LOCATION": "France",
	})

	require.NoError(t, err)
	assert.Equal(t, "Brie", *got.Cheese.Name)
	assert.Equal(t, []string{"creamy"}, got.Cheese.Flavours)
	assert.Equal(t, "France", *got.Cheese.Origin.Location)
}

func TestShape_IndicesSortedNumerically(t *testing.T) {
	env := map[string]string{}
	for i, v := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		env["Cheese:Flavours:"+strconv.Itoa(i)] = v
	}

	got, err := settingsDescriptor.Shape(env)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}, got.Cheese.Flavours)
}

func TestShape_EmptyValueIsPresent(t *testing.T) {
	got, err := settingsDescriptor.Shape(map[string]string{"Cheese:Name": ""})

	require.NoError(t, err)
	require.NotNil(t, got.Cheese.Name)
	assert.Equal(t, "", *got.Cheese.Name)
}

func TestShape_NoRelevantKeys(t *testing.T) {
	got, err := settingsDescriptor.Shape(map[string]string{"HOME": "/root", "Cheese:Origin:Unknown": "x"})

	require.NoError(t, err)
	assert.Equal(t, &cheeseSettings{}, got)
}

func TestShape_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
		wantErr error
	}{
		{
			name:    "sparse indices",
			env:     map[string]string{"Cheese:Flavours:0": "a", "Cheese:Flavours:2": "c"},
			wantKey: "Cheese:Flavours",
			wantErr: ErrSparseCollection,
		},
		{
			name:    "indices not starting at zero",
			env:     map[string]string{"Cheese:Flavours:1": "a"},
			wantKey: "Cheese:Flavours",
			wantErr: ErrSparseCollection,
		},
		{
			name:    "non numeric index",
			env:     map[string]string{"Cheese:Flavours:first": "a"},
			wantKey: "Cheese:Flavours:first",
			wantErr: ErrInvalidIndex,
		},
		{
			name:    "negative index",
			env:     map[string]string{"Cheese:Flavours:-1": "a"},
			wantKey: "Cheese:Flavours:-1",
			wantErr: ErrInvalidIndex,
		},
		{
			name:    "same leaf twice",
			env:     map[string]string{"Cheese:Name": "a", "CHEESE__NAME": "b"},
			wantKey: "Cheese:Name",
			wantErr: ErrConflictingKeys,
		},
		{
			name:    "same index twice",
			env:     map[string]string{"Cheese:Flavours:0": "a", "Cheese:Flavours:00": "b"},
			wantKey: "Cheese:Flavours:00",
			wantErr: ErrConflictingKeys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := settingsDescriptor.Shape(tt.env)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrShape)
			assert.ErrorIs(t, err, tt.wantErr)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.wantKey, shapeErr.Key)
		})
	}
}

func TestShape_CoercionError(t *testing.T) {
	got, err := settingsDescriptor.Shape(map[string]string{"Cheese:Price": "cheap"})

	require.Error(t, err)
	assert.Nil(t, got)

	var coercionErr *CoercionError
	require.True(t, errors.As(err, &coercionErr))
	assert.Equal(t, "Cheese.Price", coercionErr.Path)
	assert.Equal(t, "cheap", coercionErr.Value)
	assert.Equal(t, KindScalar, coercionErr.Kind)
}

func TestShape_NonFiniteFloat(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-inf", "1e400"} {
		got, err := settingsDescriptor.Shape(map[string]string{"Cheese:Price": raw})

		assert.Nil(t, got, raw)
		var coercionErr *CoercionError
		require.True(t, errors.As(err, &coercionErr), raw)
		assert.Equal(t, "Cheese.Price", coercionErr.Path)
		assert.Equal(t, raw, coercionErr.Value)
	}
}

func TestShape_EnumValueIsTrimmed(t *testing.T) {
	got, err := settingsDescriptor.Shape(map[string]string{"Cheese:Milk": " 1", "Cheese:Price": " 1.5"})

	require.NoError(t, err)
	assert.Equal(t, goat, *got.Cheese.Milk)
	assert.Equal(t, 1.5, *got.Cheese.Price)
}

func TestShape_CollectionElementCoercionError(t *testing.T) {
	d := Describe[struct{ Sizes []int }]("Sizes",
		Collection("Sizes", func(s *struct{ Sizes []int }) *[]int { return &s.Sizes }, IntCodec),
	)

	_, err := d.Shape(map[string]string{"Sizes:0": "1", "Sizes:1": "big"})

	var coercionErr *CoercionError
	require.True(t, errors.As(err, &coercionErr))
	assert.Equal(t, "Sizes[1]", coercionErr.Path)
	assert.Equal(t, "big", coercionErr.Value)
}

func TestFilterPrefix(t *testing.T) {
	env := map[string]string{
		"Cheese:Name":       "Gouda",
		"CHEESE__PRICE":     "1",
		"CheeseShop:Name":   "Shop",
		"PATH":              "/usr/bin",
		"Wine:Cheese:Pairs": "x",
	}

	assert.Equal(t, map[string]string{
		"Cheese:Name":   "Gouda",
		"CHEESE__PRICE": "1",
	}, FilterPrefix(env, "cheese"))

	assert.Equal(t, env, FilterPrefix(env, ""))
	assert.Empty(t, FilterPrefix(env, "Milk"))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "Cheese:Origin:Location", NormalizeKey("Cheese__Origin__Location"))
	assert.Equal(t, "Cheese:Name", NormalizeKey("Cheese:Name"))
}
