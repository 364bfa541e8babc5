package constant

const (
	// TopicDocumentIngest is the in-process watermill topic for upload
	// processing jobs.
	TopicDocumentIngest = "document_ingest"

	// EventDocumentsChanged fires whenever a session's ready document set
	// changes (ingest finished or session wiped).
	EventDocumentsChanged = "DOCUMENTS_CHANGED"
	// EventSessionCreated fires after a new study session row is stored.
	EventSessionCreated = "SESSION_CREATED"
	// EventSessionDeleted fires after a session and its chunks are removed.
	EventSessionDeleted = "SESSION_DELETED"
)

const (
	// Panel keys locked behind the pro plan. Unknown keys are treated as
	// locked.
	FeatureSamplePaper = "sample_paper"
	FeatureTeacher     = "teacher"
	FeatureImage       = "image"
)

// ProFeatures returns the gated feature keys.
func ProFeatures() []string {
	return []string{FeatureSamplePaper, FeatureTeacher, FeatureImage}
}
