package config

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/user-none/empico/emu"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "positional cartridge",
			args: []string{"game.p8"},
			want: Options{Cart: "game.p8", Region: "auto", Scale: defaultScale, ScreenshotDir: "."},
		},
		{
			name: "cart flag",
			args: []string{"-cart", "game.p8", "-scale", "2"},
			want: Options{Cart: "game.p8", Region: "auto", Scale: 2, ScreenshotDir: "."},
		},
		{
			name: "region is lower cased",
			args: []string{"-region", "PAL", "game.p8"},
			want: Options{Cart: "game.p8", Region: "pal", Scale: defaultScale, ScreenshotDir: "."},
		},
		{
			name: "logging and integrity flags",
			args: []string{"-debug", "-q", "-nointegrity", "-screenshots", "/tmp", "game.p8"},
			want: Options{
				Cart: "game.p8", Region: "auto", Scale: defaultScale, ScreenshotDir: "/tmp",
				Debug: true, Quiet: true, NoIntegrity: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{name: "no cartridge", args: nil, usage: true},
		{name: "unknown flag", args: []string{"-bogus", "game.p8"}, usage: true},
		{name: "argument after cartridge", args: []string{"game.p8", "-debug"}, usage: true},
		{name: "bad region", args: []string{"-region", "secam", "game.p8"}},
		{name: "scale too small", args: []string{"-scale", "0", "game.p8"}},
		{name: "scale too large", args: []string{"-scale", "99", "game.p8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestResolveRegion(t *testing.T) {
	r, err := ResolveRegion("auto", nil)
	assert.NoError(t, err)
	assert.Equal(t, emu.DefaultRegion(), r)

	r, err = ResolveRegion("PAL", nil)
	assert.NoError(t, err)
	assert.Equal(t, emu.RegionPAL, r)

	r, err = ResolveRegion("ntsc", nil)
	assert.NoError(t, err)
	assert.Equal(t, emu.RegionNTSC, r)

	_, err = ResolveRegion("secam", nil)
	assert.ErrorContains(t, err, "invalid region")
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}
