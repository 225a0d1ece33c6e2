// Package checklist holds the daily inspection core: catalog construction,
// answer state, the submission gate, scoring and record assembly.
package checklist

import (
	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// Group names double as sections of the persisted record.
const (
	GroupGrooming       = "Grooming"
	GroupSafety         = "Safety"
	GroupDocuments      = "Documents"
	GroupBikeInspection = "Bike Inspection"
)

// Group is one named section of the catalog with its items in display order.
type Group struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// rule adds items to a group when its condition holds for the form context.
type rule struct {
	when  func(model.FormContext) bool
	items []string
}

func always(model.FormContext) bool { return true }

func isRider(ctx model.FormContext) bool { return ctx.EmployeeType == model.Rider }

func wearsCap(ctx model.FormContext) bool {
	return ctx.EmployeeType == model.Rider ||
		(ctx.EmployeeType == model.Crew && ctx.Role == model.FOH)
}

func gateControlled(ctx model.FormContext) bool {
	return ctx.Branch == model.DHAPhase6 || ctx.Branch == model.WehshiLab
}

// The whole conditional structure of the form, as one table per group.
// Order matters: groups render top to bottom, items in declaration order.
var catalogRules = []struct {
	group string
	rules []rule
}{
	{GroupGrooming, []rule{
		{always, []string{
			"Clean Shirt",
			"Clean Black Pant",
			"Wear Black Shoes",
			"Wear Black Socks",
			"Nail Care",
			"Oral Hygiene",
		}},
		{wearsCap, []string{"JJ Cap", "Hair Grooming"}},
		{func(ctx model.FormContext) bool { return ctx.Gender == model.Male }, []string{"Beard Grooming"}},
		{func(ctx model.FormContext) bool { return ctx.Gender == model.Female }, []string{"Scarf / Cap Management"}},
	}},
	{GroupSafety, []rule{
		{isRider, []string{"Helmet", "Mobile Phone", "Handfree", "Gloves"}},
	}},
	{GroupDocuments, []rule{
		{isRider, []string{"Motorcycle License", "Registration Papers", "CNIC"}},
		{func(ctx model.FormContext) bool { return isRider(ctx) && gateControlled(ctx) }, []string{"Society Gate Pass"}},
	}},
	{GroupBikeInspection, []rule{
		{isRider, []string{
			"Fuel Level",
			"Tire Condition",
			"Brakes Working",
			"Clean Condition",
			"Chain Cover",
			"Rear-View Mirrors",
			"Seat Carrier",
			"Leg Guard",
		}},
	}},
}

// Catalog evaluates the rule table for one form context and returns the
// applicable groups in order. Groups with no applicable items are omitted,
// so crew forms carry only the Grooming group.
func Catalog(ctx model.FormContext) []Group {
	catalog := make([]Group, 0, len(catalogRules))
	for _, g := range catalogRules {
		var items []string
		for _, r := range g.rules {
			if r.when(ctx) {
				items = append(items, r.items...)
			}
		}
		if len(items) > 0 {
			catalog = append(catalog, Group{Name: g.group, Items: items})
		}
	}
	return catalog
}

// ItemNames flattens a catalog into the full ordered item list.
func ItemNames(catalog []Group) []string {
	var names []string
	for _, g := range catalog {
		names = append(names, g.Items...)
	}
	return names
}
