package routes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/arbazmubasher1/HygieneChecklist/app"
	"github.com/arbazmubasher1/HygieneChecklist/checklist"
	"github.com/arbazmubasher1/HygieneChecklist/httpx"
	"github.com/arbazmubasher1/HygieneChecklist/log"
	"github.com/arbazmubasher1/HygieneChecklist/model"
	"github.com/arbazmubasher1/HygieneChecklist/routes/middlewares"
	"github.com/arbazmubasher1/HygieneChecklist/store"
)

// AnswerPayload is one item's answer as submitted by the client.
type AnswerPayload struct {
	Selection string `json:"selection"`
	Remark    string `json:"remark,omitempty"`
}

// SubmissionRequest is the full form as posted on submit. Image fields are
// base64 strings on the wire, decoded by encoding/json.
type SubmissionRequest struct {
	Branch           string                   `json:"branch"`
	EmployeeType     string                   `json:"employee_type"`
	Role             string                   `json:"role_type,omitempty"`
	Gender           string                   `json:"gender"`
	Shift            string                   `json:"shift"`
	Date             string                   `json:"date"`
	EmployeeID       string                   `json:"employee_id"`
	EmployeeName     string                   `json:"employee_name"`
	ManagerName      string                   `json:"manager_name"`
	ManagerVerified  bool                     `json:"manager_verified"`
	Answers          map[string]AnswerPayload `json:"answers"`
	EmployeePhoto    []byte                   `json:"employee_photo,omitempty"`
	BikePhoto        []byte                   `json:"bike_photo,omitempty"`
	ManagerSignature []byte                   `json:"manager_signature,omitempty"`
}

func parseContext(branch, employeeType, role, gender, shift, date string) (ctx model.FormContext, err error) {
	ctx.Branch, err = model.ParseBranch(branch)
	if err != nil {
		return
	}
	ctx.EmployeeType, err = model.ParseEmployeeType(employeeType)
	if err != nil {
		return
	}
	if ctx.EmployeeType == model.Crew {
		ctx.Role, err = model.ParseRole(role)
		if err != nil {
			return
		}
		if ctx.Role == model.RoleNone {
			err = errors.New("missing role_type for crew")
			return
		}
	}
	ctx.Gender, err = model.ParseGender(gender)
	if err != nil {
		return
	}
	ctx.Shift, err = model.ParseShift(shift)
	if err != nil {
		return
	}
	if _, err = time.Parse(model.DateFormat, date); err != nil {
		err = fmt.Errorf("bad date %q, want YYYY-MM-DD", date)
		return
	}
	ctx.Date = date
	return
}

// GetChecklistItems renders the catalog for the selections passed as query
// parameters, so the client knows which items to draw. Shift and date do
// not affect catalog membership and default here.
func GetChecklistItems(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		ctx, err := parseContext(
			q.Get("branch"),
			q.Get("employee_type"),
			q.Get("role_type"),
			q.Get("gender"),
			string(model.Morning),
			time.Now().Format(model.DateFormat),
		)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.get_checklist_items", "%s", err)
			return
		}

		render.JSON(w, r, checklist.Catalog(ctx))
	}
}

// SubmitChecklist runs the whole submission pipeline: replay the answers
// into a session, gate, upload evidence, assemble and persist.
func SubmitChecklist(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := SubmissionRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		ctx, err := parseContext(req.Branch, req.EmployeeType, req.Role, req.Gender, req.Shift, req.Date)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.parse_context", "%s", err)
			return
		}

		// inspectors only submit for their own branch
		if branch := middlewares.Branch(r); branch != "" && branch != string(ctx.Branch) {
			httpx.LogStatusMsg(w, http.StatusForbidden, log.DebugLevel, "request.branch_mismatch",
				"cannot submit for branch %s", ctx.Branch)
			return
		}

		session := checklist.NewSession(ctx)
		for item, answer := range req.Answers {
			selection, err := model.ParseSelection(answer.Selection)
			if err != nil {
				httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.parse_answers", "item %q: %s", item, err)
				return
			}
			// remark first: a compliant selection then clears it
			session.SetRemark(item, answer.Remark)
			session.SetSelection(item, selection)
		}

		signaturePresent := len(req.ManagerSignature) > 0
		gate := session.Check(signaturePresent, req.ManagerVerified)
		if gate.Blocked() {
			log.Debugf("submit_checklist: blocked (%d incomplete, %d missing remarks)",
				len(gate.Incomplete), len(gate.MissingRemarks))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, gate)
			return
		}

		links, err := uploadEvidence(r, app, req, ctx)
		if err != nil {
			httpx.LogErrorMsg(w, http.StatusBadGateway, "imgbb.upload", err,
				"image upload failed, please submit again")
			return
		}

		identity := checklist.Identity{
			EmployeeID:   req.EmployeeID,
			EmployeeName: req.EmployeeName,
			ManagerName:  req.ManagerName,
		}
		record, gate, err := session.Submit(identity, signaturePresent, req.ManagerVerified, links, time.Now())
		if err != nil {
			httpx.LogInternalError(w, "submit_checklist.session", err)
			return
		}
		if gate.Blocked() {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, gate)
			return
		}

		id, err := app.Store.Add(r.Context(), record)
		if err != nil {
			httpx.LogErrorMsg(w, http.StatusInternalServerError, "db.insert_checklist", err,
				"could not save the checklist, please submit again")
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id":    id,
			"score": record.Score,
		})
	}
}

func uploadEvidence(r *http.Request, app app.App, req SubmissionRequest, ctx model.FormContext) (links checklist.ImageLinks, err error) {
	if len(req.EmployeePhoto) > 0 {
		links.EmployeePhoto, err = app.Uploader.Upload(r.Context(), req.EmployeePhoto)
		if err != nil {
			return
		}
	}
	if ctx.EmployeeType == model.Rider && len(req.BikePhoto) > 0 {
		links.BikePhoto, err = app.Uploader.Upload(r.Context(), req.BikePhoto)
		if err != nil {
			return
		}
	}
	if len(req.ManagerSignature) > 0 {
		links.ManagerSignature, err = app.Uploader.Upload(r.Context(), req.ManagerSignature)
	}
	return
}

func GetSubmissionById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		record, err := app.Store.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_checklist", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_checklist", err)
			return
		}

		render.JSON(w, r, record)
	}
}
