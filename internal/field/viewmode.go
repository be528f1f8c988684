package field

// Variant selects the field's outer visual treatment.
type Variant int

const (
	// VariantOutlined - bordered input box, the default editable look.
	VariantOutlined Variant = iota
	// VariantPlain - borderless inline text, the view-only look.
	VariantPlain
)

// WidgetConfig is the whitelisted configuration handed to the widget layer.
// The *Set flags record which fields the caller assigned explicitly; only
// explicitly set fields survive the view-only defaults in ApplyViewMode.
// Named fields with documented precedence, deliberately not a deep merge.
type WidgetConfig struct {
	ReadOnly    bool
	ReadOnlySet bool

	Disabled    bool
	DisabledSet bool

	DisableClearable    bool
	DisableClearableSet bool

	Variant    Variant
	VariantSet bool

	// Style overrides. Not subject to caller precedence: view-only forces
	// HideTrailingAction regardless of what the caller supplied.
	HideTrailingAction bool
	HideUnderline      bool
}

// WithReadOnly sets ReadOnly as an explicit caller choice.
func (c WidgetConfig) WithReadOnly(v bool) WidgetConfig {
	c.ReadOnly = v
	c.ReadOnlySet = true
	return c
}

// WithDisabled sets Disabled as an explicit caller choice.
func (c WidgetConfig) WithDisabled(v bool) WidgetConfig {
	c.Disabled = v
	c.DisabledSet = true
	return c
}

// WithDisableClearable sets DisableClearable as an explicit caller choice.
func (c WidgetConfig) WithDisableClearable(v bool) WidgetConfig {
	c.DisableClearable = v
	c.DisableClearableSet = true
	return c
}

// WithVariant sets Variant as an explicit caller choice.
func (c WidgetConfig) WithVariant(v Variant) WidgetConfig {
	c.Variant = v
	c.VariantSet = true
	return c
}

// ApplyViewMode merges the view-only display mode into a caller config.
//
// With viewOnly false the config passes through untouched. With viewOnly
// true the field is forced read-only, disabled, non-clearable and plain,
// except for fields the caller set explicitly, which win. The trailing
// dropdown affordance is hidden unconditionally. disableUnderline only has
// effect in view-only mode and suppresses the decorative underline as a
// scoped style override, leaving chip visuals alone.
func ApplyViewMode(cfg WidgetConfig, viewOnly, disableUnderline bool) WidgetConfig {
	if !viewOnly {
		return cfg
	}
	if !cfg.ReadOnlySet {
		cfg.ReadOnly = true
	}
	if !cfg.DisabledSet {
		cfg.Disabled = true
	}
	if !cfg.DisableClearableSet {
		cfg.DisableClearable = true
	}
	if !cfg.VariantSet {
		cfg.Variant = VariantPlain
	}
	cfg.HideTrailingAction = true
	if disableUnderline {
		cfg.HideUnderline = true
	}
	return cfg
}
