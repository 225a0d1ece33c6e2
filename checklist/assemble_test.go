package checklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

func TestAssembleRiderRecord(t *testing.T) {
	ctx := formContext(model.DHAPhase6, model.Rider, model.RoleNone, model.Male)
	catalog := Catalog(ctx)

	answers := NewAnswerStore()
	for _, item := range ItemNames(catalog) {
		answers.SetSelection(item, model.Compliant)
	}
	answers.SetSelection("Helmet", model.NonCompliant)
	answers.SetRemark("Helmet", "cracked shell")

	score := ScoreOf(catalog, answers)
	submittedAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	record := Assemble(ctx, Identity{
		EmployeeID:   "R-104",
		EmployeeName: "Bilal Ahmed",
		ManagerName:  "Sana Tariq",
	}, catalog, answers, score, ImageLinks{
		EmployeePhoto:    "https://i.ibb.co/emp.jpg",
		BikePhoto:        "https://i.ibb.co/bike.jpg",
		ManagerSignature: "https://i.ibb.co/sig.png",
	}, submittedAt)

	assert.Equal(t, model.DHAPhase6, record.Branch)
	assert.Equal(t, model.Rider, record.EmployeeType)
	assert.Equal(t, model.RoleNone, record.Role)
	assert.Equal(t, "R-104", record.EmployeeID)
	assert.Equal(t, "Sana Tariq", record.ManagerName)
	assert.Equal(t, submittedAt, record.SubmittedAt)

	total := len(ItemNames(catalog))
	assert.Equal(t, model.Score{Correct: total - 1, Total: total, Percentage: score.Percentage}, record.Score)

	require.NotNil(t, record.SafetyChecks)
	assert.Equal(t, model.NonCompliant, record.SafetyChecks["Helmet"])
	assert.Equal(t, model.Compliant, record.SafetyChecks["Gloves"])
	assert.Equal(t, model.Compliant, record.Documents["Society Gate Pass"])
	assert.Equal(t, model.Compliant, record.BikeInspection["Leg Guard"])
	assert.Len(t, record.Grooming, 9)

	assert.Equal(t, map[string]string{"Helmet": "cracked shell"}, record.Remarks)

	assert.Equal(t, "https://i.ibb.co/emp.jpg", record.EmployeePhotoURL)
	assert.Equal(t, "https://i.ibb.co/bike.jpg", record.BikePhotoURL)
	assert.Equal(t, "https://i.ibb.co/sig.png", record.ManagerSignatureURL)
}

func TestAssembleNeverPutsRemarkOnCompliantItem(t *testing.T) {
	catalog := []Group{{Name: GroupGrooming, Items: []string{"Clean Shirt"}}}

	// stale text on a compliant item: remark typed after the selection flip
	answers := NewAnswerStore()
	answers.SetSelection("Clean Shirt", model.Compliant)
	answers.SetRemark("Clean Shirt", "stained")

	record := Assemble(model.FormContext{}, Identity{}, catalog, answers, model.Score{}, ImageLinks{}, time.Now())
	assert.Empty(t, record.Remarks)
	assert.Equal(t, model.Compliant, record.Grooming["Clean Shirt"])
}

func TestAssembleCrewRecordOmitsRiderGroups(t *testing.T) {
	ctx := formContext(model.JoharTown, model.Crew, model.BOH, model.Female)
	catalog := Catalog(ctx)

	answers := NewAnswerStore()
	for _, item := range ItemNames(catalog) {
		answers.SetSelection(item, model.Compliant)
	}

	record := Assemble(ctx, Identity{}, catalog, answers, ScoreOf(catalog, answers), ImageLinks{}, time.Now())

	assert.Equal(t, model.BOH, record.Role)
	assert.Nil(t, record.SafetyChecks)
	assert.Nil(t, record.Documents)
	assert.Nil(t, record.BikeInspection)
	assert.Empty(t, record.BikePhotoURL)
	assert.Contains(t, record.Grooming, "Scarf / Cap Management")
}
