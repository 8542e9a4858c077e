package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pizza/builder"
)

// newFlags mirrors the flags the CLI registers.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("kind", "", "")
	fs.String("size", "", "")
	fs.String("shape", "", "")
	fs.StringSlice("topping", nil, "")
	fs.StringP("output", "o", "", "")
	fs.String("log-level", "", "")
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pizza.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultKind, cfg.Kind)
	assert.Empty(t, cfg.Size)
	assert.Empty(t, cfg.Shape)
	assert.Empty(t, cfg.Toppings)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.FileUsed)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
kind: pepperoni
size: Small
shape: square
toppings: [Bacon]
output: table
log_level: info
`)

	// File only.
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "pepperoni", cfg.Kind)
	assert.Equal(t, "Small", cfg.Size)
	assert.Equal(t, []string{"Bacon"}, cfg.Toppings)
	assert.Equal(t, path, cfg.FileUsed)

	// Env beats file.
	t.Setenv("PIZZA_SIZE", "Medium")
	t.Setenv("PIZZA_TOPPINGS", "Tomato, Mushrooms")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Medium", cfg.Size)
	assert.Equal(t, []string{"Tomato", "Mushrooms"}, cfg.Toppings)
	assert.Equal(t, "square", cfg.Shape)

	// Flags beat env; unchanged flags do not override.
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--size", "Large", "--topping", "Pepperoni", "--topping", "Bacon", "--log-level", "debug"}))
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "Large", cfg.Size)
	assert.Equal(t, []string{"Pepperoni", "Bacon"}, cfg.Toppings)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pepperoni", cfg.Kind)
	assert.Equal(t, "table", cfg.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	cfg := &Config{Output: "table"}
	require.NoError(t, cfg.Validate())

	cfg.Output = "xml"
	require.Error(t, cfg.Validate())
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr error
	}{
		{
			name: "general with overrides",
			cfg:  Config{Kind: "general", Size: "large", Shape: "Square", Toppings: []string{"bacon"}},
			want: "Size: Large, Shape: square, Toppings: Bacon",
		},
		{
			name: "four cheese defaults",
			cfg:  Config{Kind: "four-cheese"},
			want: "Size: Medium, Shape: Round, Toppings: CheeseRegular, CheeseMozzarella, CheeseGouda, CheeseDorblue",
		},
		{
			name: "pepperoni extra topping",
			cfg:  Config{Kind: "pepperoni", Toppings: []string{"Mushrooms"}},
			want: "Size: Medium, Shape: Round, Toppings: Pepperoni, Mushrooms",
		},
		{name: "unknown kind", cfg: Config{Kind: "hawaiian"}, wantErr: builder.ErrUnknownKind},
		{name: "unknown size", cfg: Config{Kind: "general", Size: "Huge"}, wantErr: builder.ErrUnknownSize},
		{name: "unknown shape", cfg: Config{Kind: "general", Shape: "oval"}, wantErr: builder.ErrUnknownShape},
		{name: "unknown topping", cfg: Config{Kind: "general", Toppings: []string{"Pineapple"}}, wantErr: builder.ErrUnknownTopping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := tt.cfg.Order()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			p, err := o.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestOrder_BuildUnknownKind(t *testing.T) {
	_, err := Order{Kind: builder.Kind(9)}.Build()
	require.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Empty(t, splitList(""))
}
