package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name          string
		summary       *Summary
		wantOK        bool
		wantIDs       []string
		wantSucceeded int
	}{
		{
			name:          "empty batch",
			summary:       &Summary{Kind: KindInstall},
			wantOK:        true,
			wantIDs:       []string{},
			wantSucceeded: 0,
		},
		{
			name:          "all succeeded",
			summary:       &Summary{Kind: KindInstall, Total: 3},
			wantOK:        true,
			wantIDs:       []string{},
			wantSucceeded: 3,
		},
		{
			name: "failures keep order",
			summary: &Summary{
				Kind:  KindRemove,
				Total: 4,
				Failed: []Outcome{
					{ID: "totem", Err: errors.New("exit 1")},
					{ID: "cheese", Err: errors.New("exit 1")},
				},
			},
			wantOK:        false,
			wantIDs:       []string{"totem", "cheese"},
			wantSucceeded: 2,
		},
		{
			name: "cleanup failure does not fail the batch",
			summary: &Summary{
				Kind:    KindRemove,
				Total:   2,
				Cleanup: &Outcome{ID: "autoremove", Err: errors.New("exit 1")},
			},
			wantOK:        true,
			wantIDs:       []string{},
			wantSucceeded: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.summary.OK())
			assert.Equal(t, tt.wantIDs, tt.summary.FailedIDs())
			assert.Equal(t, tt.wantSucceeded, tt.summary.Succeeded())
		})
	}
}

func TestOutcome_Succeeded(t *testing.T) {
	assert.True(t, Outcome{ID: "vim"}.Succeeded())
	assert.False(t, Outcome{ID: "vim", Err: errors.New("exit 1")}.Succeeded())
}

func TestKind_Verb(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindInstall, "installing"},
		{KindRemove, "removing"},
		{KindEnable, ""},
		{KindSetup, ""},
		{Kind("swap"), "swap"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Verb())
		})
	}
}

func TestKind_Describe(t *testing.T) {
	assert.Equal(t, "installing vim", KindInstall.Describe("vim"))
	assert.Equal(t, "removing totem", KindRemove.Describe("totem"))
	assert.Equal(t, "swap ffmpeg-free for ffmpeg", KindEnable.Describe("swap ffmpeg-free for ffmpeg"))
}

func TestMerge(t *testing.T) {
	setup := &Summary{
		Kind:   KindSetup,
		Total:  1,
		Failed: []Outcome{{ID: "remote flathub", Err: errors.New("exit 1")}},
	}
	apps := &Summary{
		Kind:   KindInstall,
		Total:  2,
		Failed: []Outcome{{ID: "org.videolan.VLC", Err: errors.New("exit 1")}},
	}

	merged := Merge(KindInstall, setup, nil, apps)

	assert.Equal(t, KindInstall, merged.Kind)
	assert.Equal(t, 3, merged.Total)
	assert.Equal(t, []string{"remote flathub", "org.videolan.VLC"}, merged.FailedIDs())
	assert.Nil(t, merged.Cleanup)
}
