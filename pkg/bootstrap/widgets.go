package bootstrap

import (
	"github.com/vango-dev/sdui/pkg/dispatch"
	"github.com/vango-dev/sdui/pkg/group"
	"github.com/vango-dev/sdui/pkg/icon"
	"github.com/vango-dev/sdui/pkg/toolkit"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Family groups widgets by interaction model.
type Family string

const (
	FamilyLayout       Family = "layout"
	FamilyTypography   Family = "typography"
	FamilyDataDisplay  Family = "data display"
	FamilyActions      Family = "actions"
	FamilyCloseable    Family = "closeable"
	FamilyTextInputs   Family = "text inputs"
	FamilyChoiceInputs Family = "choice inputs"
	FamilyBoolean      Family = "boolean"
	FamilyGroups       Family = "groups"
	FamilyNavigation   Family = "navigation"
	FamilyOverlays     Family = "overlays"
	FamilyDates        Family = "dates"
	FamilyCharts       Family = "charts"
)

// Families lists the families in table order.
func Families() []Family {
	return []Family{
		FamilyLayout, FamilyTypography, FamilyDataDisplay, FamilyActions,
		FamilyCloseable, FamilyTextInputs, FamilyChoiceInputs, FamilyBoolean,
		FamilyGroups, FamilyNavigation, FamilyOverlays, FamilyDates, FamilyCharts,
	}
}

// Widget is one row of the registration table.
type Widget struct {
	Tag       string
	Family    Family
	Component widget.Component
}

// Kind returns the decorator kind of the widget, or "none" for an
// undecorated toolkit control.
func (w Widget) Kind() string {
	if d, ok := w.Component.(*dispatch.Decorator); ok {
		return d.Kind().String()
	}
	return "none"
}

// Event returns the event name the widget reports, or "".
func (w Widget) Event() string {
	if d, ok := w.Component.(*dispatch.Decorator); ok && d.Dispatches() {
		return d.Config().EventName
	}
	return ""
}

// ValueAttr returns the native value prop of a value widget, or "".
func (w Widget) ValueAttr() string {
	if d, ok := w.Component.(*dispatch.Decorator); ok {
		switch d.Kind() {
		case dispatch.KindValue, dispatch.KindInputValue:
			return d.Config().ValueAttr
		}
	}
	return ""
}

var (
	sections  = []string{"leftSection", "rightSection"}
	iconProps = map[string]bool{"icon": true, "thumbIcon": true, "name": true}
	closeCfg  = dispatch.Config{EventName: "close", EventSourceAttr: "onClose"}
	endCfg    = dispatch.Config{EventSourceAttr: "onChangeEnd"}
	checkCfg  = dispatch.Config{ValueAttr: "checked", ValueExtractor: dispatch.TargetChecked}
)

// table accumulates rows in registration order.
type table struct {
	opts Options
	rows []Widget
}

func (t *table) add(f Family, c widget.Component, tags ...string) {
	for _, tag := range tags {
		t.rows = append(t.rows, Widget{Tag: tag, Family: f, Component: c})
	}
}

// with returns cfg with the inline attrs set.
func with(cfg dispatch.Config, inline ...string) dispatch.Config {
	cfg.InlineElementAttrs = inline
	return cfg
}

func (t *table) inline(c widget.ComponentFunc, attrs ...string) widget.Component {
	return dispatch.Inline(t.icons(c, attrs), attrs...)
}

func (t *table) event(c widget.ComponentFunc, cfg dispatch.Config) widget.Component {
	return dispatch.Event(t.icons(c, cfg.InlineElementAttrs), cfg)
}

func (t *table) value(c widget.ComponentFunc, cfg dispatch.Config) widget.Component {
	return dispatch.Value(t.icons(c, cfg.InlineElementAttrs), cfg)
}

func (t *table) input(c widget.ComponentFunc, cfg dispatch.Config) widget.Component {
	cfg.Commit, cfg.Debounce = t.opts.Commit, t.opts.Debounce
	return dispatch.InputValue(t.icons(c, cfg.InlineElementAttrs), cfg)
}

func (t *table) callbacks(c widget.ComponentFunc, defaults map[string]dispatch.Formatter) widget.Component {
	return dispatch.Callbacks(c, dispatch.Config{CallbackAttrs: defaults})
}

// icons resolves bare icon names held by the icon-valued attrs among
// attrs. Descriptor values are resolved by the decorator before.
func (t *table) icons(c widget.ComponentFunc, attrs []string) widget.Component {
	var names []string
	for _, a := range attrs {
		if iconProps[a] {
			names = append(names, a)
		}
	}
	if len(names) == 0 {
		return c
	}
	return withIcons(t.opts.Icons, c, names)
}

func withIcons(r *icon.Resolver, c widget.Component, attrs []string) widget.Component {
	return widget.ComponentFunc(func(ctx *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		cloned := false
		for _, a := range attrs {
			name, ok := props[a].(string)
			if !ok {
				continue
			}
			if !cloned {
				props, cloned = props.Clone(), true
			}
			props[a] = r.Resolve(name, nil)
		}
		return c.Render(ctx, props, children)
	})
}

// Widgets returns the full registration table.
func Widgets(opts Options) []Widget {
	opts = opts.withDefaults()
	t := &table{opts: opts}

	t.add(FamilyLayout, t.inline(toolkit.Box, sections...), "box")
	t.add(FamilyLayout, t.inline(toolkit.Stack, sections...), "stack")
	t.add(FamilyLayout, t.inline(toolkit.Group, sections...), "group")
	t.add(FamilyLayout, t.inline(toolkit.Flex, sections...), "flex")
	t.add(FamilyLayout, t.inline(toolkit.Grid, sections...), "grid")
	t.add(FamilyLayout, t.inline(toolkit.GridCol, sections...), "gridcol")
	t.add(FamilyLayout, t.inline(toolkit.SimpleGrid, sections...), "simplegrid")
	t.add(FamilyLayout, t.inline(toolkit.Container, sections...), "container")
	t.add(FamilyLayout, t.inline(toolkit.Center, sections...), "center")
	t.add(FamilyLayout, toolkit.Space, "space")
	t.add(FamilyLayout, t.inline(toolkit.Paper, sections...), "paper")
	t.add(FamilyLayout, t.inline(toolkit.Divider, "label"), "divider")
	t.add(FamilyLayout, t.inline(toolkit.AspectRatio, sections...), "aspectratio")
	t.add(FamilyLayout, t.inline(toolkit.ScrollArea, sections...), "scrollarea")
	t.add(FamilyLayout, t.inline(toolkit.AppShell, sections...), "appshell")
	t.add(FamilyLayout, t.inline(toolkit.Navbar, sections...), "navbar")
	t.add(FamilyLayout, toolkit.Main, "main")
	t.add(FamilyLayout, toolkit.Provider, "provider")
	t.add(FamilyLayout, toolkit.Affix, "affix")
	t.add(FamilyLayout, t.inline(toolkit.Card, sections...), "card")
	t.add(FamilyLayout, t.inline(toolkit.CardSection, sections...), "cardsection")
	t.add(FamilyLayout, t.inline(toolkit.Fieldset, "legend"), "fieldset")
	t.add(FamilyLayout, toolkit.ActionIconGroup, "actionicongroup")
	t.add(FamilyLayout, toolkit.ActionIconGroupSection, "actionicongroupsection")

	t.add(FamilyTypography, widget.ComponentFunc(toolkit.Text), "text")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.Title), "title")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.Anchor), "anchor", "link")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.Code), "code")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.Kbd), "kbd")
	t.add(FamilyTypography, t.inline(toolkit.Blockquote, "icon", "cite"), "blockquote")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.Mark), "mark")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.Highlight), "highlight")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.List), "list")
	t.add(FamilyTypography, t.inline(toolkit.ListItem, "icon"), "listitem")
	t.add(FamilyTypography, widget.ComponentFunc(toolkit.NumberFormatter), "numberformatter")

	t.add(FamilyDataDisplay, t.inline(toolkit.Badge, sections...), "badge")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Avatar), "avatar")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Image), "image")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Table), "table")
	t.add(FamilyDataDisplay, toolkit.TablePart("thead"), "thead", "tablehead")
	t.add(FamilyDataDisplay, toolkit.TablePart("tbody"), "tbody", "tablebody")
	t.add(FamilyDataDisplay, toolkit.TablePart("tfoot"), "tfoot", "tablefoot")
	t.add(FamilyDataDisplay, toolkit.TablePart("tr"), "tr", "tablerow")
	t.add(FamilyDataDisplay, toolkit.TablePart("th"), "th", "tableheader")
	t.add(FamilyDataDisplay, toolkit.TablePart("td"), "td", "tablecell")
	t.add(FamilyDataDisplay, toolkit.TablePart("caption"), "tablecaption")
	t.add(FamilyDataDisplay, toolkit.ScrollArea, "tablescrollcontainer")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Progress), "progress")
	t.add(FamilyDataDisplay, t.inline(toolkit.RingProgress, "label"), "ringprogress")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Skeleton), "skeleton")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Loader), "loader")
	t.add(FamilyDataDisplay, t.inline(toolkit.Indicator, "label"), "indicator")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Timeline), "timeline")
	t.add(FamilyDataDisplay, t.inline(toolkit.TimelineItem, "bullet", "title"), "timelineitem")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Accordion), "accordion")
	t.add(FamilyDataDisplay, t.inline(toolkit.AccordionItem, "label"), "accordionitem")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.Spoiler), "spoiler")
	t.add(FamilyDataDisplay, widget.ComponentFunc(toolkit.ThemeIcon), "themeicon")
	t.add(FamilyDataDisplay, opts.Icons.Component(), "icon")

	t.add(FamilyActions, t.event(toolkit.Button, with(dispatch.Config{}, sections...)), "button")
	t.add(FamilyActions, t.event(toolkit.ActionIcon, with(dispatch.Config{}, "name")), "actionicon")
	t.add(FamilyActions, t.event(toolkit.CloseButton, dispatch.Config{}), "closebutton")
	t.add(FamilyActions, t.event(toolkit.CopyButton, dispatch.Config{}), "copybutton")

	t.add(FamilyCloseable, t.event(toolkit.Alert, with(closeCfg, "icon", "title")), "alert")
	t.add(FamilyCloseable, t.event(toolkit.Notification, with(closeCfg, "icon", "title")), "notification")
	t.add(FamilyCloseable, t.event(toolkit.Dialog, with(closeCfg, "title")), "dialog")
	t.add(FamilyCloseable, t.event(toolkit.Modal, with(closeCfg, "title")), "modal")
	t.add(FamilyCloseable, t.event(toolkit.Drawer, with(closeCfg, "title")), "drawer")
	t.add(FamilyCloseable, t.event(toolkit.Pill, closeCfg), "pill")

	t.add(FamilyTextInputs, t.input(toolkit.TextInput, with(dispatch.Config{}, sections...)), "textinput")
	t.add(FamilyTextInputs, t.input(toolkit.PasswordInput, with(dispatch.Config{}, sections...)), "passwordinput")
	t.add(FamilyTextInputs, t.input(toolkit.NumberInput, with(dispatch.Config{ValueExtractor: dispatch.TargetNumber}, sections...)), "numberinput")
	t.add(FamilyTextInputs, t.input(toolkit.Textarea, dispatch.Config{}), "textarea")
	t.add(FamilyTextInputs, t.input(toolkit.JSONInput, dispatch.Config{}), "jsoninput")
	t.add(FamilyTextInputs, t.input(toolkit.PinInput, dispatch.Config{}), "pininput")
	t.add(FamilyTextInputs, t.input(toolkit.Autocomplete, with(dispatch.Config{}, sections...)), "autocomplete")

	t.add(FamilyChoiceInputs, t.value(toolkit.Select, with(dispatch.Config{}, sections...)), "select", "nativeselect")
	t.add(FamilyChoiceInputs, t.value(toolkit.MultiSelect, with(dispatch.Config{}, sections...)), "multiselect")
	t.add(FamilyChoiceInputs, t.value(toolkit.SegmentedControl, dispatch.Config{}), "segmentedcontrol")
	t.add(FamilyChoiceInputs, t.value(toolkit.Slider, endCfg), "slider")
	t.add(FamilyChoiceInputs, t.value(toolkit.RangeSlider, endCfg), "rangeslider")
	t.add(FamilyChoiceInputs, t.value(toolkit.Rating, dispatch.Config{}), "rating")
	t.add(FamilyChoiceInputs, t.value(toolkit.ColorInput, with(endCfg, sections...)), "colorinput")
	t.add(FamilyChoiceInputs, t.value(toolkit.ColorPicker, dispatch.Config{}), "colorpicker")
	t.add(FamilyChoiceInputs, t.value(toolkit.TagsInput, with(dispatch.Config{}, sections...)), "tagsinput")
	t.add(FamilyChoiceInputs, t.value(toolkit.FileInput, with(dispatch.Config{}, sections...)), "fileinput")

	t.add(FamilyBoolean, t.value(toolkit.Checkbox, with(checkCfg, "label")), "checkbox")
	t.add(FamilyBoolean, t.value(toolkit.Switch, with(checkCfg, "thumbIcon", "label")), "switch")
	t.add(FamilyBoolean, t.value(toolkit.Chip, with(checkCfg, "icon")), "chip")
	t.add(FamilyBoolean, t.value(toolkit.Radio, with(checkCfg, "label")), "radio")

	for _, a := range group.Adapters() {
		t.add(FamilyGroups, dispatch.Value(a.Component(opts.Groups), dispatch.Config{}), a.Name)
	}

	t.add(FamilyNavigation, t.value(toolkit.Tabs, dispatch.Config{}), "tabs")
	t.add(FamilyNavigation, widget.ComponentFunc(toolkit.TabList), "tablist")
	t.add(FamilyNavigation, t.inline(toolkit.Tab, sections...), "tab")
	t.add(FamilyNavigation, widget.ComponentFunc(toolkit.TabPanel), "tabpanel")
	t.add(FamilyNavigation, t.event(toolkit.NavLink, with(dispatch.Config{}, append([]string{"label", "description"}, sections...)...)), "navlink")
	t.add(FamilyNavigation, t.inline(toolkit.Breadcrumbs, "separator"), "breadcrumbs")
	t.add(FamilyNavigation, t.value(toolkit.Pagination, dispatch.Config{}), "pagination")
	t.add(FamilyNavigation, t.value(toolkit.Stepper, dispatch.Config{ValueAttr: "active"}), "stepper")
	t.add(FamilyNavigation, t.event(toolkit.Burger, dispatch.Config{}), "burger")
	t.add(FamilyNavigation, t.inline(toolkit.Menu, "target", "label"), "menu")
	t.add(FamilyNavigation, t.event(toolkit.MenuItem, with(dispatch.Config{}, sections...)), "menuitem")

	t.add(FamilyOverlays, t.inline(toolkit.Tooltip, "label"), "tooltip")
	t.add(FamilyOverlays, t.inline(toolkit.Popover, "target"), "popover")
	t.add(FamilyOverlays, t.inline(toolkit.HoverCard, "target"), "hovercard")

	t.add(FamilyDates, t.value(toolkit.DateInput, with(dispatch.Config{}, sections...)), "dateinput")
	t.add(FamilyDates, t.value(toolkit.DatePicker, with(dispatch.Config{}, sections...)), "datepicker", "datepickerinput")
	t.add(FamilyDates, t.value(toolkit.DateTimePicker, with(dispatch.Config{}, sections...)), "datetimepicker")
	t.add(FamilyDates, t.value(toolkit.TimeInput, with(dispatch.Config{}, sections...)), "timeinput")
	t.add(FamilyDates, t.value(toolkit.MonthPicker, with(dispatch.Config{}, sections...)), "monthpicker")
	t.add(FamilyDates, t.value(toolkit.YearPicker, with(dispatch.Config{}, sections...)), "yearpicker")

	chartDefaults := map[string]dispatch.Formatter{
		"valueFormatter":        dispatch.IdentityFormat,
		"tooltipLabelFormatter": dispatch.IdentityFormat,
	}
	t.add(FamilyCharts, t.callbacks(toolkit.LineChart, chartDefaults), "linechart")
	t.add(FamilyCharts, t.callbacks(toolkit.BarChart, chartDefaults), "barchart")
	t.add(FamilyCharts, t.callbacks(toolkit.AreaChart, chartDefaults), "areachart")
	t.add(FamilyCharts, t.callbacks(toolkit.CompositeChart, chartDefaults), "compositechart")
	t.add(FamilyCharts, t.callbacks(toolkit.PieChart, chartDefaults), "piechart")
	t.add(FamilyCharts, t.callbacks(toolkit.DonutChart, chartDefaults), "donutchart")
	t.add(FamilyCharts, t.callbacks(toolkit.FunnelChart, chartDefaults), "funnelchart")
	t.add(FamilyCharts, t.callbacks(toolkit.RadialBarChart, chartDefaults), "radialbarchart")
	t.add(FamilyCharts, t.callbacks(toolkit.RadarChart, chartDefaults), "radarchart")
	t.add(FamilyCharts, t.callbacks(toolkit.ScatterChart, chartDefaults), "scatterchart")
	t.add(FamilyCharts, t.callbacks(toolkit.BubbleChart, chartDefaults), "bubblechart")
	t.add(FamilyCharts, t.callbacks(toolkit.Sparkline, chartDefaults), "sparkline")
	t.add(FamilyCharts, t.callbacks(toolkit.Heatmap, map[string]dispatch.Formatter{
		"getTooltipLabel": toolkit.HeatmapLabel,
	}), "heatmap")

	return t.rows
}
