package iconbake

// Option configures a Baker during creation.
//
// Example:
//
//	b, err := iconbake.New(
//	    iconbake.WithProfile(iconbake.ProfileCentered),
//	    iconbake.WithIconDir("assets/icons"),
//	)
type Option func(*options)

// options holds the Baker configuration.
type options struct {
	profile  Profile
	imaging  Imaging
	table    Table
	iconDir  string
	fallback string
	size     int
	workers  int
}

// defaultOptions returns the default configuration. The profile is left
// unset on purpose: callers must choose one.
func defaultOptions() options {
	return options{
		imaging:  nil, // DefaultImaging() if still nil in New
		table:    DefaultTable(),
		iconDir:  DefaultIconDir,
		fallback: DefaultFallback,
		size:     IconSize,
		workers:  1,
	}
}

// WithProfile selects the baking profile. It is required.
func WithProfile(p Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithImaging sets the imaging backend used to decode, resize and
// composite. See the backend package for the registered alternatives.
func WithImaging(im Imaging) Option {
	return func(o *options) {
		o.imaging = im
	}
}

// WithTable replaces the default icon table.
func WithTable(t Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithIconDir sets the asset directory.
func WithIconDir(dir string) Option {
	return func(o *options) {
		o.iconDir = dir
	}
}

// WithFallback sets the file name, inside the asset directory, substituted
// for missing icon files.
func WithFallback(name string) Option {
	return func(o *options) {
		o.fallback = name
	}
}

// WithIconSize sets the canvas side length. It must match ICON_SIZE in the
// renderer's header.
func WithIconSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithWorkers sets how many icons are processed concurrently. The default
// is 1, a strictly sequential run. Zero or less means GOMAXPROCS. Output is
// identical either way.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
