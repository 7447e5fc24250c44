// Package backend is a registry of named imaging backends for iconbake.
//
// The built-in golang.org/x/image backends ("xdraw", "catmullrom") are
// registered when this package is imported. Other backends register
// themselves from init functions:
//
//	import _ "github.com/gogpu/iconbake/backend/gift"
//
// Select one by name and pass it to the Baker:
//
//	im, err := backend.Get("gift")
//	if err != nil {
//		log.Fatal(err)
//	}
//	b, err := iconbake.New(
//		iconbake.WithProfile(iconbake.ProfileCentered),
//		iconbake.WithImaging(im),
//	)
//
// Backends differ only in resampling arithmetic. The renderer contract
// (threshold, layout, canvas size) does not depend on the backend, but the
// exact RGB values of resampled edge pixels can, so a project should pin one
// backend to keep its artifact reproducible.
package backend
