package source

import (
	"bytes"
	"context"
	"io/fs"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-settings-builder/internal/mock"
	"github.com/MKhiriev/go-settings-builder/models"
)

const cheddarJSON = `{
	"Cheese": {
		"Name": "Cheddar",
		"Price": 0.99,
		"Milk": "Cow",
		"Flavours": ["plain",],
		"Origin": {"Location": "UK"},
	},
}`

func TestBuilder_Build_LayersSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceReader(ctrl)
	files := mock.NewMockFileReader(ctrl)
	env := mock.NewMockEnvironment(ctrl)

	gomock.InOrder(
		resources.EXPECT().ReadResourceText("embedded-settings.json").Return(cheddarJSON, nil),
		files.EXPECT().ReadFileText("folder/settings.json").Return(`{"Cheese": {"Name": "Gouda"}}`, nil),
		env.EXPECT().Environ().Return(map[string]string{"Cheese:Origin:Location": "Netherlands"}),
	)

	got, err := NewBuilder(models.CheeseSettingsDescriptor).
		WithEmbeddedResource("embedded-settings.json", resources).
		WithJSONFile("folder/settings.json", files).
		WithEnvironment(env, "Cheese").
		Build(context.Background())

	require.NoError(t, err)
	want := &models.CheeseSettings{Cheese: &models.Cheese{
		Name:     ptr("Gouda"),
		Price:    ptr(0.99),
		Milk:     ptr(models.MilkCow),
		Flavours: []string{"plain"},
		Origin:   &models.Origin{Location: ptr("Netherlands")},
	}}
	assert.Equal(t, want, got)
}

func TestBuilder_Build_MissingFileSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceReader(ctrl)
	files := mock.NewMockFileReader(ctrl)

	resources.EXPECT().ReadResourceText("embedded-settings.json").Return(cheddarJSON, nil)
	files.EXPECT().ReadFileText("missing.json").Return("", fs.ErrNotExist)

	got, err := NewBuilder(models.CheeseSettingsDescriptor).
		WithEmbeddedResource("embedded-settings.json", resources).
		WithJSONFile("missing.json", files).
		Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Cheddar", *got.Cheese.Name)
}

func TestBuilder_Build_NoSources(t *testing.T) {
	got, err := NewBuilder(models.CheeseSettingsDescriptor).Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.CheeseSettings{}, got)
}

func TestBuilder_Build_OrderDecidesPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		order []Kind
		want  string
	}{
		{name: "env last", order: []Kind{KindFile, KindResource, KindEnv}, want: "Brie"},
		{name: "file last", order: []Kind{KindEnv, KindResource, KindFile}, want: "Gouda"},
		{name: "resource last", order: []Kind{KindEnv, KindFile, KindResource}, want: "Cheddar"},
		{name: "resource only", order: []Kind{KindResource}, want: "Cheddar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resources := mock.NewMockResourceReader(ctrl)
			files := mock.NewMockFileReader(ctrl)
			env := mock.NewMockEnvironment(ctrl)

			resources.EXPECT().ReadResourceText("embedded-settings.json").Return(cheddarJSON, nil).AnyTimes()
			files.EXPECT().ReadFileText("settings.json").Return(`{"cheese": {"name": "Gouda"}}`, nil).AnyTimes()
			env.EXPECT().Environ().Return(map[string]string{"CHEESE__NAME": "Brie"}).AnyTimes()

			got, err := NewBuilder(models.CheeseSettingsDescriptor).
				WithOrder(tt.order, Inputs{
					FilePath:     "settings.json",
					Files:        files,
					ResourceName: "embedded-settings.json",
					Resources:    resources,
					Section:      "Cheese",
					Env:          env,
				}).
				Build(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, *got.Cheese.Name)
		})
	}
}

func TestBuilder_Build_StopsAtFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileReader(ctrl)
	env := mock.NewMockEnvironment(ctrl)

	files.EXPECT().ReadFileText("settings.json").Return(`{"Cheese": {"Milk": "Buffalo"}}`, nil)
	env.EXPECT().Environ().Times(0)

	got, err := NewBuilder(models.CheeseSettingsDescriptor).
		WithJSONFile("settings.json", files).
		WithEnvironment(env, "").
		Build(context.Background())

	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file settings.json")
	assert.Contains(t, err.Error(), "Cheese.Milk")
}

func TestBuilder_Build_UnknownKind(t *testing.T) {
	got, err := NewBuilder(models.CheeseSettingsDescriptor).
		WithOrder([]Kind{"yaml"}, Inputs{}).
		Build(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	vars := map[string]string{
		"Cheese:Flavours:1": "sharp",
		"Cheese:Flavours:0": "smoky",
		"Cheese:Price":      "1.5",
		"Cheese:Milk":       "1",
	}

	var first *models.CheeseSettings
	for i := 0; i < 5; i++ {
		ctrl := gomock.NewController(t)
		env := mock.NewMockEnvironment(ctrl)
		env.EXPECT().Environ().Return(vars)

		got, err := NewBuilder(models.CheeseSettingsDescriptor).WithEnvironment(env, "").Build(context.Background())
		require.NoError(t, err)
		if first == nil {
			first = got
			continue
		}
		assert.Equal(t, first, got)
	}
	assert.Equal(t, models.MilkGoat, *first.Cheese.Milk)
}

func TestBuilder_Build_LogsLoadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mock.NewMockEnvironment(ctrl)
	env.EXPECT().Environ().Return(map[string]string{})

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	_, err := NewBuilder(models.CheeseSettingsDescriptor).WithEnvironment(env, "").Build(ctx)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"load_id":"`)
	assert.Contains(t, buf.String(), `"source":"env"`)
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    []Kind
		wantErr error
	}{
		{name: "default", names: []string{"resource", "file", "env"}, want: DefaultOrder},
		{name: "mixed case", names: []string{" ENV ", "File"}, want: []Kind{KindEnv, KindFile}},
		{name: "empty", names: nil, want: []Kind{}},
		{name: "unknown", names: []string{"file", "yaml"}, wantErr: ErrUnknownSource},
		{name: "duplicate", names: []string{"env", "Env"}, wantErr: ErrDuplicateSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrder(tt.names)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
