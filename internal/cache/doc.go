// Package cache provides a small generic LRU cache.
//
// The baker uses it to keep decoded source images for the duration of a
// run, so an asset shared by several icons (the fallback in particular) is
// decoded once:
//
//	sources := cache.New[string, *iconbake.Pixmap](16)
//	img, err := sources.GetOrLoad(path, func() (*iconbake.Pixmap, error) {
//	    return imaging.Decode(path)
//	})
//
// Failed loads are not cached. Cache is safe for concurrent use.
package cache
