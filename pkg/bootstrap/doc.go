// Package bootstrap registers the widget set.
//
// Widgets returns the registration table: each row binds an abstract tag
// to a toolkit control wrapped in the decorator its family needs.
//
//	family         decorator   event    value attr
//	layout         inline      -        -
//	actions        event       click    -
//	closeable      event       close    -
//	text inputs    input       change   value
//	choice inputs  value       change   value
//	boolean        value       change   checked
//	groups         value       change   value
//	charts         callback    -        -
//
// Slider, range slider and color input report on onChangeEnd, once the
// user settles on a value. Icon-valued props (icon, thumbIcon, and name
// on actionicon) accept a bare icon name or a nested descriptor.
//
//	reg := registry.New()
//	err := bootstrap.Register(reg, bootstrap.FromConfig(cfg, logger, m))
package bootstrap
