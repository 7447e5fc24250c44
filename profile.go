package iconbake

import "fmt"

// Profile is a versioned baking policy. The threshold and sizing rule of a
// profile are part of the data contract with the renderer: two profiles
// produce incompatible encodings of the same icon set.
type Profile struct {
	// Name identifies the profile in configuration files.
	Name string

	// Threshold is the minimum alpha for a pixel to be emitted as opaque.
	Threshold uint8

	// Centered selects per-icon content sizes centered on the canvas. When
	// false, every icon is resized to fill the whole canvas.
	Centered bool
}

// Built-in profiles.
var (
	// ProfileSimple resizes every icon to the full canvas and treats
	// alpha below 200 as transparent.
	ProfileSimple = Profile{Name: "simple", Threshold: 200}

	// ProfileCentered resizes each icon to its content size, centers it on
	// a transparent canvas and treats alpha below 150 as transparent.
	ProfileCentered = Profile{Name: "centered", Threshold: 150, Centered: true}
)

// Profiles lists the built-in profiles.
func Profiles() []Profile {
	return []Profile{ProfileSimple, ProfileCentered}
}

// ProfileByName returns the built-in profile with the given name.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("iconbake: unknown profile %q", name)
}

// IsZero reports whether p is the unset profile.
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// ContentSize returns the size the given icon's content is resized to on a
// canvas of side canvas.
func (p Profile) ContentSize(spec IconSpec, canvas int) int {
	if !p.Centered {
		return canvas
	}
	return spec.ContentSize
}

// String returns the profile name.
func (p Profile) String() string {
	return p.Name
}
