package graph

// Property keys marking filters that editing and undo must not touch.
const (
	serviceProperty = "mlt_service"
	loaderProperty  = "_loader"
	hiddenProperty  = "shotcut:hidden"
)

// Filter is a processing unit attached to a producer. Filters live in
// an explicit sequence on their producer and carry their own ordered
// property set plus a disabled flag.
type Filter struct {
	props    *Properties
	disabled bool
}

// NewFilter creates a filter for the named service.
func NewFilter(service string) *Filter {
	f := &Filter{props: NewProperties()}
	f.props.Set(serviceProperty, service)
	return f
}

// Service returns the filter's service name.
func (f *Filter) Service() string {
	return f.props.Get(serviceProperty)
}

// Props returns the filter's property set.
func (f *Filter) Props() *Properties {
	return f.props
}

// Disabled reports whether the filter is bypassed.
func (f *Filter) Disabled() bool {
	return f.disabled
}

// SetDisabled sets the bypass flag.
func (f *Filter) SetDisabled(disabled bool) {
	f.disabled = disabled
}

// IsLoader reports whether this is an engine-internal loader filter.
// Loader filters are attached by the engine, not the user, and are
// exempt from paste/undo edits.
func (f *Filter) IsLoader() bool {
	return f.props.GetInt(loaderProperty) != 0
}

// SetLoader marks the filter as engine-internal.
func (f *Filter) SetLoader(loader bool) {
	if loader {
		f.props.SetInt(loaderProperty, 1)
	} else {
		f.props.Delete(loaderProperty)
	}
}

// IsHidden reports whether the filter is hidden from editing and undo.
func (f *Filter) IsHidden() bool {
	return f.props.GetInt(hiddenProperty) != 0
}

// SetHidden marks the filter as hidden from editing and undo.
func (f *Filter) SetHidden(hidden bool) {
	if hidden {
		f.props.SetInt(hiddenProperty, 1)
	} else {
		f.props.Delete(hiddenProperty)
	}
}

// Clone returns an independent copy of the filter.
func (f *Filter) Clone() *Filter {
	return &Filter{props: f.props.Clone(), disabled: f.disabled}
}
