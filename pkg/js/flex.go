package js

import (
	"flexlay/pkg/css"
	"flexlay/pkg/layout"

	"github.com/dop251/goja"
)

// registerFlex installs the global `flex` object:
//
//	flex.node(kind, cssText)   create a node, returns a proxy
//	flex.layout(root, w, h)    run the engine; negative size = unconstrained
//
// Node proxies expose append(child), style(prop, value), measure({...}),
// rect() and children(). The same proxy object is returned for the same
// node, so === identity checks work.
func (e *Engine) registerFlex() {
	cache := make(map[layout.NodeID]goja.Value)

	flex := e.vm.NewObject()
	flex.Set("node", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(e.vm.NewTypeError("flex.node: kind argument required"))
		}
		kind := call.Arguments[0].String()
		cssText := ""
		if len(call.Arguments) > 1 {
			cssText = call.Arguments[1].String()
		}
		id := e.tree.NewNode(kind, css.ParseInlineStyle(cssText))
		return e.nodeProxy(cache, id)
	})
	flex.Set("layout", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 3 {
			panic(e.vm.NewTypeError("flex.layout: root, width, height required"))
		}
		id, ok := nodeID(call.Arguments[0])
		if !ok {
			panic(e.vm.NewTypeError("flex.layout: first argument is not a node"))
		}
		w := call.Arguments[1].ToFloat()
		h := call.Arguments[2].ToFloat()
		if err := e.layout.Layout(e.tree, id, w, h); err != nil {
			panic(e.vm.NewGoError(err))
		}
		return goja.Undefined()
	})
	e.vm.Set("flex", flex)
}

// nodeProxy returns the cached JS object for a node, creating it on first
// use.
func (e *Engine) nodeProxy(cache map[layout.NodeID]goja.Value, id layout.NodeID) goja.Value {
	if v, ok := cache[id]; ok {
		return v
	}

	obj := e.vm.NewObject()
	obj.Set("__id", int64(id))
	obj.Set("append", func(call goja.FunctionCall) goja.Value {
		for _, arg := range call.Arguments {
			childID, ok := nodeID(arg)
			if !ok {
				panic(e.vm.NewTypeError("append: argument is not a node"))
			}
			e.tree.AddChild(id, childID)
		}
		return obj
	})
	obj.Set("style", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("style: property and value required"))
		}
		s := e.tree.Node(id).Style
		css.ExpandShorthand(s, call.Arguments[0].String(), call.Arguments[1].String())
		return obj
	})
	obj.Set("measure", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(e.vm.NewTypeError("measure: metrics object required"))
		}
		var m map[string]interface{}
		if err := e.vm.ExportTo(call.Arguments[0], &m); err != nil {
			panic(e.vm.NewTypeError("measure: %v", err))
		}
		metrics := layout.Metrics{
			MinContentWidth: numField(m, "minWidth"),
			MaxContentWidth: numField(m, "maxWidth"),
			Height:          numField(m, "height"),
		}
		if _, ok := m["baseline"]; ok {
			metrics.Baseline = numField(m, "baseline")
			metrics.HasBaseline = true
		}
		e.tree.SetMeasure(id, func() layout.Metrics {
			return metrics
		})
		return obj
	})
	obj.Set("rect", func(call goja.FunctionCall) goja.Value {
		r := e.tree.Node(id).Rect
		out := e.vm.NewObject()
		out.Set("x", r.X)
		out.Set("y", r.Y)
		out.Set("width", r.Width)
		out.Set("height", r.Height)
		return out
	})
	obj.Set("children", func(call goja.FunctionCall) goja.Value {
		kids := e.tree.Node(id).Children
		arr := make([]interface{}, len(kids))
		for i, k := range kids {
			arr[i] = e.nodeProxy(cache, k)
		}
		return e.vm.ToValue(arr)
	})

	cache[id] = obj
	return obj
}

// numField reads a numeric entry from an exported JS object.
func numField(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// nodeID extracts the node handle a proxy carries.
func nodeID(v goja.Value) (layout.NodeID, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return layout.NilNode, false
	}
	idVal := obj.Get("__id")
	if idVal == nil || goja.IsUndefined(idVal) {
		return layout.NilNode, false
	}
	return layout.NodeID(idVal.ToInteger()), true
}
