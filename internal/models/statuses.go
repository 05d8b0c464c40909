package models

type AdminRole string
type EnquiryType string
type EnquiryStatus string
type ApplicationStatus string
type EnrollmentStatus string
type BatchMode string

const (
	AdminRoleAdmin AdminRole = "admin"

	EnquiryTypeContact      EnquiryType = "contact"
	EnquiryTypeProject      EnquiryType = "project"
	EnquiryTypeDemo         EnquiryType = "demo"
	EnquiryTypeConsultation EnquiryType = "consultation"

	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusRead      EnquiryStatus = "read"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusArchived  EnquiryStatus = "archived"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusContacted ApplicationStatus = "contacted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusConfirmed EnrollmentStatus = "confirmed"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"

	BatchModeOnline  BatchMode = "online"
	BatchModeOffline BatchMode = "offline"
	BatchModeHybrid  BatchMode = "hybrid"
)

// ValidEnquiryType reports membership in the closed enquiry type set.
func ValidEnquiryType(t EnquiryType) bool {
	switch t {
	case EnquiryTypeContact, EnquiryTypeProject, EnquiryTypeDemo, EnquiryTypeConsultation:
		return true
	}
	return false
}

// ValidEnquiryStatus reports membership in the closed enquiry status set.
func ValidEnquiryStatus(s EnquiryStatus) bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusRead, EnquiryStatusContacted, EnquiryStatusArchived:
		return true
	}
	return false
}

// ValidApplicationStatus reports membership in the application status set.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusContacted, ApplicationStatusRejected:
		return true
	}
	return false
}

// ValidEnrollmentStatus reports membership in the enrollment status set.
func ValidEnrollmentStatus(s EnrollmentStatus) bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusConfirmed, EnrollmentStatusCancelled:
		return true
	}
	return false
}
