package model

import (
	"fmt"
	"time"
)

type Branch string

const (
	DHAPhase6    Branch = "DHA-P6"
	DHACC        Branch = "DHA-CC"
	CloudKitchen Branch = "Cloud Kitchen"
	JoharTown    Branch = "Johar Town"
	Bahria       Branch = "Bahria"
	WehshiLab    Branch = "Wehshi Lab"
	Emporium     Branch = "Emporium"
)

// Branches lists every location, in the order they appear on the form.
var Branches = []Branch{
	DHAPhase6, DHACC, CloudKitchen, JoharTown, Bahria, WehshiLab, Emporium,
}

func ParseBranch(s string) (Branch, error) {
	for _, b := range Branches {
		if s == string(b) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown branch %q", s)
}

type EmployeeType string

const (
	Crew  EmployeeType = "Crew"
	Rider EmployeeType = "Rider"
)

func ParseEmployeeType(s string) (EmployeeType, error) {
	switch EmployeeType(s) {
	case Crew, Rider:
		return EmployeeType(s), nil
	}
	return "", fmt.Errorf("unknown employee type %q", s)
}

// Role is only meaningful for Crew; riders carry RoleNone.
type Role string

const (
	RoleNone Role = ""
	FOH      Role = "FOH"
	BOH      Role = "BOH"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleNone, FOH, BOH:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role type %q", s)
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case Male, Female:
		return Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

type Shift string

const (
	Morning Shift = "Morning"
	Lunch   Shift = "Lunch"
	Dinner  Shift = "Dinner"
	Closing Shift = "Closing"
)

func ParseShift(s string) (Shift, error) {
	switch Shift(s) {
	case Morning, Lunch, Dinner, Closing:
		return Shift(s), nil
	}
	return "", fmt.Errorf("unknown shift %q", s)
}

// Selection is the tri-state answer attached to a check item.
type Selection string

const (
	Unanswered   Selection = "unanswered"
	Compliant    Selection = "compliant"
	NonCompliant Selection = "non_compliant"
)

func ParseSelection(s string) (Selection, error) {
	switch Selection(s) {
	case Unanswered, Compliant, NonCompliant:
		return Selection(s), nil
	}
	return "", fmt.Errorf("unknown selection %q", s)
}

// Answered reports whether the item has been marked either way.
func (s Selection) Answered() bool {
	return s == Compliant || s == NonCompliant
}

// DateFormat is the wire format of the inspection date.
const DateFormat = "2006-01-02"

// FormContext holds the categorical inputs that determine which check
// items exist on a form. Changing any of them yields a different catalog.
type FormContext struct {
	Branch       Branch       `json:"branch"`
	EmployeeType EmployeeType `json:"employee_type"`
	Role         Role         `json:"role_type,omitempty"`
	Gender       Gender       `json:"gender"`
	Shift        Shift        `json:"shift"`
	Date         string       `json:"date"`
}

// Answer is the state of one check item: the tri-state selection plus the
// free-text remark required whenever the selection is NonCompliant.
type Answer struct {
	Selection Selection `json:"selection"`
	Remark    string    `json:"remark,omitempty"`
}

type Score struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// SubmissionRecord is the immutable document persisted for one completed
// inspection. The JSON field names are the wire contract with the record
// store and must not change.
type SubmissionRecord struct {
	ID                  string               `json:"id,omitempty"`
	Branch              Branch               `json:"branch"`
	EmployeeType        EmployeeType         `json:"employee_type"`
	Shift               Shift                `json:"shift"`
	Date                string               `json:"date"`
	Gender              Gender               `json:"gender"`
	Role                Role                 `json:"role_type,omitempty"`
	EmployeeID          string               `json:"employee_id"`
	EmployeeName        string               `json:"employee_name"`
	ManagerName         string               `json:"manager_name"`
	Grooming            map[string]Selection `json:"grooming"`
	Remarks             map[string]string    `json:"remarks"`
	SafetyChecks        map[string]Selection `json:"safety_checks,omitempty"`
	Documents           map[string]Selection `json:"documents,omitempty"`
	BikeInspection      map[string]Selection `json:"bike_inspection,omitempty"`
	Score               Score                `json:"score"`
	EmployeePhotoURL    string               `json:"employee_photo_url,omitempty"`
	BikePhotoURL        string               `json:"bike_photo_url,omitempty"`
	ManagerSignatureURL string               `json:"manager_signature_url,omitempty"`
	SubmittedAt         time.Time            `json:"submitted_at"`
}
