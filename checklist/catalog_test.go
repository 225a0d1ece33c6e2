package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

func formContext(branch model.Branch, et model.EmployeeType, role model.Role, gender model.Gender) model.FormContext {
	return model.FormContext{
		Branch:       branch,
		EmployeeType: et,
		Role:         role,
		Gender:       gender,
		Shift:        model.Morning,
		Date:         "2025-06-01",
	}
}

var baseGrooming = []string{
	"Clean Shirt", "Clean Black Pant", "Wear Black Shoes", "Wear Black Socks",
	"Nail Care", "Oral Hygiene",
}

func TestCatalogCrewFOHMale(t *testing.T) {
	catalog := Catalog(formContext(model.JoharTown, model.Crew, model.FOH, model.Male))

	require.Len(t, catalog, 1)
	assert.Equal(t, GroupGrooming, catalog[0].Name)

	want := append([]string{}, baseGrooming...)
	want = append(want, "JJ Cap", "Hair Grooming", "Beard Grooming")
	assert.Equal(t, want, catalog[0].Items)
}

func TestCatalogCrewBOHFemale(t *testing.T) {
	catalog := Catalog(formContext(model.Bahria, model.Crew, model.BOH, model.Female))

	require.Len(t, catalog, 1)

	want := append([]string{}, baseGrooming...)
	want = append(want, "Scarf / Cap Management")
	assert.Equal(t, want, catalog[0].Items)

	items := ItemNames(catalog)
	assert.NotContains(t, items, "JJ Cap")
	assert.NotContains(t, items, "Hair Grooming")
	assert.NotContains(t, items, "Beard Grooming")
}

func TestCatalogCrewBOHMaleExcludesScarf(t *testing.T) {
	catalog := Catalog(formContext(model.Emporium, model.Crew, model.BOH, model.Male))
	assert.NotContains(t, ItemNames(catalog), "Scarf / Cap Management")
}

func TestCatalogRiderDHAP6Male(t *testing.T) {
	catalog := Catalog(formContext(model.DHAPhase6, model.Rider, model.RoleNone, model.Male))

	require.Len(t, catalog, 4)
	assert.Equal(t, GroupGrooming, catalog[0].Name)
	assert.Equal(t, GroupSafety, catalog[1].Name)
	assert.Equal(t, GroupDocuments, catalog[2].Name)
	assert.Equal(t, GroupBikeInspection, catalog[3].Name)

	wantGrooming := append([]string{}, baseGrooming...)
	wantGrooming = append(wantGrooming, "JJ Cap", "Hair Grooming", "Beard Grooming")
	assert.Equal(t, wantGrooming, catalog[0].Items)

	assert.Equal(t, []string{"Helmet", "Mobile Phone", "Handfree", "Gloves"}, catalog[1].Items)
	assert.Equal(t, []string{"Motorcycle License", "Registration Papers", "CNIC", "Society Gate Pass"}, catalog[2].Items)
	assert.Equal(t, []string{
		"Fuel Level", "Tire Condition", "Brakes Working", "Clean Condition",
		"Chain Cover", "Rear-View Mirrors", "Seat Carrier", "Leg Guard",
	}, catalog[3].Items)
}

func TestCatalogRiderFemale(t *testing.T) {
	catalog := Catalog(formContext(model.CloudKitchen, model.Rider, model.RoleNone, model.Female))

	items := ItemNames(catalog)
	assert.Contains(t, items, "Scarf / Cap Management")
	assert.NotContains(t, items, "Beard Grooming")
	assert.NotContains(t, items, "Society Gate Pass")
}

func TestCatalogSocietyGatePassPerBranch(t *testing.T) {
	gated := map[model.Branch]bool{
		model.DHAPhase6: true,
		model.WehshiLab: true,
	}
	for _, branch := range model.Branches {
		catalog := Catalog(formContext(branch, model.Rider, model.RoleNone, model.Male))
		if gated[branch] {
			assert.Contains(t, ItemNames(catalog), "Society Gate Pass", "branch %s", branch)
		} else {
			assert.NotContains(t, ItemNames(catalog), "Society Gate Pass", "branch %s", branch)
		}
	}
}

func TestCatalogDeterministicAndNonEmpty(t *testing.T) {
	for _, branch := range model.Branches {
		for _, tc := range []model.FormContext{
			formContext(branch, model.Crew, model.FOH, model.Male),
			formContext(branch, model.Crew, model.FOH, model.Female),
			formContext(branch, model.Crew, model.BOH, model.Male),
			formContext(branch, model.Crew, model.BOH, model.Female),
			formContext(branch, model.Rider, model.RoleNone, model.Male),
			formContext(branch, model.Rider, model.RoleNone, model.Female),
		} {
			first := Catalog(tc)
			require.NotEmpty(t, first)
			require.NotEmpty(t, ItemNames(first))
			assert.Equal(t, first, Catalog(tc))
		}
	}
}
