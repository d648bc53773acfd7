package ui

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/vcnkl/provision/models"
)

func TestPrinter_StatusLines(t *testing.T) {
	tests := []struct {
		name     string
		print    func(p *Printer)
		expected string
	}{
		{
			name:     "info",
			print:    func(p *Printer) { p.Info("skipping %s", "removal") },
			expected: "[INFO] skipping removal\n",
		},
		{
			name:     "success",
			print:    func(p *Printer) { p.Success("done") },
			expected: "[OK] done\n",
		},
		{
			name:     "warn",
			print:    func(p *Printer) { p.Warn("careful") },
			expected: "[WARN] careful\n",
		},
		{
			name:     "error",
			print:    func(p *Printer) { p.Error("Invalid choice: %q", "9") },
			expected: "[ERROR] Invalid choice: \"9\"\n",
		},
		{
			name:     "faint",
			print:    func(p *Printer) { p.Faint("dry run") },
			expected: "dry run\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrinter_Menu(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Menu("Fedora setup", []MenuEntry{
		{Key: "1", Label: "Install system packages"},
		{Key: "7", Label: "Exit"},
	})

	assert.Contains(t, buf.String(), "Fedora setup\n")
	assert.Contains(t, buf.String(), "  1) Install system packages\n")
	assert.Contains(t, buf.String(), "  7) Exit\n")
}

func TestPrinter_Outcome(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Outcome(models.KindInstall, models.Outcome{ID: "vim"})
	p.Outcome(models.KindRemove, models.Outcome{ID: "totem", Err: errors.New("exit 1")})
	p.Outcome(models.KindSetup, models.Outcome{ID: "add remote flathub"})

	assert.Equal(t, "[OK] installing vim\n[ERROR] removing totem failed: exit 1\n[OK] add remote flathub\n", buf.String())
}

func TestPrinter_Summary(t *testing.T) {
	tests := []struct {
		name     string
		summary  *models.Summary
		contains []string
	}{
		{
			name:     "all ok",
			summary:  &models.Summary{Kind: models.KindInstall, Total: 3},
			contains: []string{"[OK] Install: all 3 steps succeeded"},
		},
		{
			name:     "single step",
			summary:  &models.Summary{Kind: models.KindInstall, Total: 1},
			contains: []string{"all 1 step succeeded"},
		},
		{
			name: "failures listed",
			summary: &models.Summary{
				Kind:  models.KindInstall,
				Total: 3,
				Failed: []models.Outcome{
					{ID: "item2", Err: errors.New("exit 1")},
				},
			},
			contains: []string{"[ERROR] Install: 1 of 3 failed: item2"},
		},
		{
			name: "cleanup failure",
			summary: &models.Summary{
				Kind:    models.KindRemove,
				Total:   2,
				Cleanup: &models.Outcome{ID: "autoremove", Err: errors.New("exit 1")},
			},
			contains: []string{"[OK] Install: all 2 steps succeeded", "[WARN] Install: cleanup \"autoremove\" failed: exit 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).Summary("Install", tt.summary)
			for _, c := range tt.contains {
				assert.Contains(t, buf.String(), c)
			}
		})
	}
}
