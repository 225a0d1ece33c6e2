package checklist

import (
	"time"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// Identity names the inspected employee and the verifying manager.
type Identity struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ManagerName  string `json:"manager_name"`
}

// ImageLinks carries the already-uploaded evidence URLs. Empty fields are
// simply absent from the record.
type ImageLinks struct {
	EmployeePhoto    string
	BikePhoto        string
	ManagerSignature string
}

// Assemble flattens one form session into the submission record. Pure
// transformation, no I/O, no ID: the record store assigns identity on
// write. Remarks are partitioned strictly by selection, so stale text on a
// compliant item never leaks into the record.
func Assemble(
	ctx model.FormContext,
	identity Identity,
	catalog []Group,
	answers *AnswerStore,
	score model.Score,
	links ImageLinks,
	submittedAt time.Time,
) model.SubmissionRecord {
	record := model.SubmissionRecord{
		Branch:              ctx.Branch,
		EmployeeType:        ctx.EmployeeType,
		Shift:               ctx.Shift,
		Date:                ctx.Date,
		Gender:              ctx.Gender,
		Role:                ctx.Role,
		EmployeeID:          identity.EmployeeID,
		EmployeeName:        identity.EmployeeName,
		ManagerName:         identity.ManagerName,
		Remarks:             map[string]string{},
		Score:               score,
		EmployeePhotoURL:    links.EmployeePhoto,
		BikePhotoURL:        links.BikePhoto,
		ManagerSignatureURL: links.ManagerSignature,
		SubmittedAt:         submittedAt.UTC(),
	}

	for _, group := range catalog {
		selections := make(map[string]model.Selection, len(group.Items))
		for _, item := range group.Items {
			a := answers.Get(item)
			selections[item] = a.Selection
			if a.Selection == model.NonCompliant && a.Remark != "" {
				record.Remarks[item] = a.Remark
			}
		}

		switch group.Name {
		case GroupGrooming:
			record.Grooming = selections
		case GroupSafety:
			record.SafetyChecks = selections
		case GroupDocuments:
			record.Documents = selections
		case GroupBikeInspection:
			record.BikeInspection = selections
		}
	}
	if record.Grooming == nil {
		record.Grooming = map[string]model.Selection{}
	}

	return record
}
