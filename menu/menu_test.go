package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcnkl/provision/logger"
	"github.com/vcnkl/provision/prompt"
	"github.com/vcnkl/provision/ui"
)

type counter struct {
	runs map[string]int
	err  map[string]error
}

func (c *counter) flow(label string) Flow {
	return Flow{
		Label: label,
		Run: func(context.Context) error {
			c.runs[label]++
			return c.err[label]
		},
	}
}

func newDispatcher(input string, c *counter) (*Dispatcher, *bytes.Buffer) {
	var out bytes.Buffer
	in := prompt.New(strings.NewReader(input), &out, nil)
	flows := []Flow{
		c.flow("Install system packages"),
		c.flow("Remove system packages"),
		c.flow("Install Flatpak packages"),
		c.flow("Install NVIDIA drivers"),
		c.flow("Install Brave browser"),
		c.flow("Install RPM Fusion repositories"),
	}
	return New(in, ui.NewPrinter(&out), logger.Nop(), flows...), &out
}

func newCounter() *counter {
	return &counter{runs: make(map[string]int), err: make(map[string]error)}
}

func TestDispatcher_InvalidThenExit(t *testing.T) {
	c := newCounter()
	d, out := newDispatcher("9\n7\n", c)

	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, 1, strings.Count(out.String(), "Invalid choice"))
	assert.Equal(t, 2, strings.Count(out.String(), "7) Exit"), "menu is redisplayed after invalid input")
	assert.Empty(t, c.runs)
}

func TestDispatcher_Selections(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRuns map[string]int
	}{
		{
			name:     "run one flow then exit",
			input:    "1\n\n7\n",
			wantRuns: map[string]int{"Install system packages": 1},
		},
		{
			name:  "several flows",
			input: "2\n\n6\n\n2\n\nq\n",
			wantRuns: map[string]int{
				"Remove system packages":          2,
				"Install RPM Fusion repositories": 1,
			},
		},
		{
			name:     "surrounding whitespace",
			input:    "  5 \n\nexit\n",
			wantRuns: map[string]int{"Install Brave browser": 1},
		},
		{
			name:     "quit word",
			input:    "QUIT\n",
			wantRuns: map[string]int{},
		},
		{
			name:     "end of input exits",
			input:    "3\n",
			wantRuns: map[string]int{"Install Flatpak packages": 1},
		},
		{
			name:     "empty input",
			input:    "",
			wantRuns: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCounter()
			d, _ := newDispatcher(tt.input, c)

			require.NoError(t, d.Run(context.Background()))
			assert.Equal(t, tt.wantRuns, c.runs)
		})
	}
}

func TestDispatcher_InvalidInputs(t *testing.T) {
	for _, input := range []string{"0", "8", "abc", "", "1.0", "-1"} {
		t.Run(input, func(t *testing.T) {
			c := newCounter()
			d, out := newDispatcher(input+"\n7\n", c)

			require.NoError(t, d.Run(context.Background()))
			assert.Equal(t, 1, strings.Count(out.String(), "Invalid choice"))
			assert.Empty(t, c.runs)
		})
	}
}

func TestDispatcher_FlowErrorAborts(t *testing.T) {
	c := newCounter()
	c.err["Install Flatpak packages"] = errors.New("flatpak is required")
	d, _ := newDispatcher("3\n\n1\n\n7\n", c)

	err := d.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, "flatpak is required", err.Error())
	assert.Equal(t, map[string]int{"Install Flatpak packages": 1}, c.runs)
}

func TestDispatcher_CancelledContext(t *testing.T) {
	c := newCounter()
	d, out := newDispatcher("1\n", c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.Empty(t, c.runs)
}

func TestDispatcher_CancelledDuringFlow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var out bytes.Buffer
	in := prompt.New(strings.NewReader("1\n\n7\n"), &out, nil)
	d := New(in, ui.NewPrinter(&out), logger.Nop(), Flow{
		Label: "Install system packages",
		Run: func(context.Context) error {
			cancel()
			return nil
		},
	})

	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "Press Enter to continue")
}
