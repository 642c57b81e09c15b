package constant

import "time"

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	QUERY_TIMEOUT_DURATION = 30 * time.Second

	DefaultPageSize uint = 20
	MaxPageSize     uint = 100
)

type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleTrainer     UserRole = "trainer"
	UserRoleParticipant UserRole = "participant"
)

type CertificateStatus string

const (
	CertificateStatusPending   CertificateStatus = "pending"
	CertificateStatusGenerated CertificateStatus = "generated"
	CertificateStatusFailed    CertificateStatus = "failed"
)
