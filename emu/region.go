package emu

import emucore "github.com/user-none/eblitui/api"

// Region is an alias for emucore.Region so frontends can pass it through.
type Region = emucore.Region

const (
	RegionNTSC = emucore.RegionNTSC
	RegionPAL  = emucore.RegionPAL
)

// The console has no video standard of its own: programs always run at
// 60 frames per second and the screen is 128 lines tall in every region.
const (
	FrameRate   = 60
	SampleRate  = 48000
	frameLines  = ScreenHeight
	frameSample = SampleRate / FrameRate
)

// DefaultRegion returns the default region (NTSC).
func DefaultRegion() Region {
	return RegionNTSC
}

// DetectRegion returns the region for a cartridge. Cartridges carry no
// region information, so this is always the default.
func DetectRegion(cart []byte) Region {
	return DefaultRegion()
}
