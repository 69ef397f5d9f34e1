package tablegrid

// Option configures an engine entry point (ResolveWidths, NewCoordinator,
// caches). Options are typed via the OptKey system so external packages can
// define their own without modifying tablegrid.
type Option func(*options)

// options holds all configuration via the extensions map.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for options.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptRowStride = tablegrid.NewOptKey("rowStride", 1)
//
//	// Set options
//	layout := tablegrid.ResolveWidths(w, cols, tablegrid.WithOpt(OptRowStride, 2))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages that define their own option keys.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

var (
	// OptGap is the pixel spacing between adjacent columns.
	OptGap = NewOptKey("gap", 0)

	// OptMinWidth is the minimum width applied to flex columns whose spec
	// leaves MinWidth at zero.
	OptMinWidth = NewOptKey("minWidth", 50)

	// OptPlaceholderWidth is the provisional flex width used before the
	// container has been measured (containerWidth <= 0).
	OptPlaceholderWidth = NewOptKey("placeholderWidth", 100)

	// OptMultiSort enables multi-column sorting: toggling a new column
	// appends a sort key instead of replacing the existing one.
	OptMultiSort = NewOptKey("multiSort", false)

	// OptMultiExpand allows several rows to be expanded at once. When off
	// (the default), expanding a row evicts the previously expanded one in
	// the same transition.
	OptMultiExpand = NewOptKey("multiExpand", false)
)

// WithGap sets the spacing between adjacent columns.
func WithGap(px int) Option { return WithOpt(OptGap, px) }

// WithMinWidth overrides the default minimum width for flex columns.
func WithMinWidth(px int) Option { return WithOpt(OptMinWidth, px) }

// WithPlaceholderWidth overrides the provisional width used for flex
// columns while the container is unmeasured.
func WithPlaceholderWidth(px int) Option { return WithOpt(OptPlaceholderWidth, px) }

// WithMultiSort enables multi-column sorting on a Coordinator.
func WithMultiSort() Option { return WithOpt(OptMultiSort, true) }

// WithMultiExpand allows multiple rows to be expanded simultaneously.
func WithMultiExpand() Option { return WithOpt(OptMultiExpand, true) }
