package domain

// QuestionType enumerates the supported answer input styles.
type QuestionType string

const (
	TypeYesNo         QuestionType = "yes_no"
	TypeSingleChoice  QuestionType = "single_choice"
	TypeMultiSelect   QuestionType = "multi_select"
	TypeCheckboxGroup QuestionType = "checkbox_group"
	TypeFreeText      QuestionType = "free_text"
	TypeNumeric       QuestionType = "numeric"
	TypeMeasurement   QuestionType = "measurement"
	TypeLocation      QuestionType = "location"
)

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeYesNo, TypeSingleChoice, TypeMultiSelect, TypeCheckboxGroup,
		TypeFreeText, TypeNumeric, TypeMeasurement, TypeLocation:
		return true
	}
	return false
}

// ConditionOperator enumerates the comparisons usable in conditional-show
// rules. Operators outside this set evaluate to false.
type ConditionOperator string

const (
	OpEquals         ConditionOperator = "eq"
	OpNotEquals      ConditionOperator = "neq"
	OpGreaterThan    ConditionOperator = "gt"
	OpLessThan       ConditionOperator = "lt"
	OpGreaterOrEqual ConditionOperator = "gte"
	OpLessOrEqual    ConditionOperator = "lte"
	OpIncludes       ConditionOperator = "includes"
	OpExcludes       ConditionOperator = "excludes"
	OpContains       ConditionOperator = "contains"
)

// SubscriptionTier gates access to premium questions. Tiers are ordered;
// unknown values rank lowest.
type SubscriptionTier string

const (
	TierStandard   SubscriptionTier = "standard"
	TierPremium    SubscriptionTier = "premium"
	TierEnterprise SubscriptionTier = "enterprise"
)

// Rank maps the tier onto its ordinal for gating comparisons.
func (t SubscriptionTier) Rank() int {
	switch t {
	case TierPremium:
		return 1
	case TierEnterprise:
		return 2
	default:
		return 0
	}
}

// Covers reports whether a subscriber at tier t may see content gated at
// required.
func (t SubscriptionTier) Covers(required SubscriptionTier) bool {
	return t.Rank() >= required.Rank()
}

// JobType identifies the restoration discipline an interview scopes.
type JobType string

const (
	JobWaterDamage      JobType = "water_damage"
	JobMouldRemediation JobType = "mould_remediation"
	JobFireSmoke        JobType = "fire_smoke"
	JobBiohazard        JobType = "biohazard"
)

// Valid reports whether j is one of the supported job types.
func (j JobType) Valid() bool {
	switch j {
	case JobWaterDamage, JobMouldRemediation, JobFireSmoke, JobBiohazard:
		return true
	}
	return false
}

// FieldMapping links an answer onto a CRM form field. Confidence is the
// base score in [0,100]. Transformer names a registered derivation; empty
// means the raw answer maps across directly. Value, when set, overrides
// the populated value for direct mappings.
type FieldMapping struct {
	FormFieldID string `json:"formFieldId"`
	Confidence  int    `json:"confidence"`
	Transformer string `json:"transformer,omitempty"`
	Value       string `json:"value,omitempty"`
}

// Derived reports whether the mapping populates through a named transformer.
func (m FieldMapping) Derived() bool { return m.Transformer != "" }

// Option is one selectable answer for choice-style questions.
type Option struct {
	Value              string `json:"value"`
	Label              string `json:"label"`
	FollowUpQuestionID string `json:"followUpQuestionId,omitempty"`
}

// SkipLogicRule jumps the interview to NextQuestionID when any previously
// recorded answer matches AnswerValue.
type SkipLogicRule struct {
	AnswerValue    AnswerValue `json:"answerValue"`
	NextQuestionID string      `json:"nextQuestionId"`
	Reason         string      `json:"reason,omitempty"`
}

// ConditionalShow hides a question until the referenced answer satisfies
// the comparison. Every condition on a question must hold for it to show.
type ConditionalShow struct {
	Field    string            `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    AnswerValue       `json:"value"`
}

// Question is one immutable library entry.
//
// SequenceNumber is 1-based; zero means unsequenced, which sorts last and
// lands in the lowest priority tier. Empty JobTypes means the question
// applies to every job type.
type Question struct {
	ID                     string            `json:"id"`
	SequenceNumber         int               `json:"sequenceNumber,omitempty"`
	Text                   string            `json:"text"`
	Type                   QuestionType      `json:"type"`
	Options                []Option          `json:"options,omitempty"`
	StandardsReference     []string          `json:"standardsReference"`
	StandardsJustification string            `json:"standardsJustification"`
	FieldMappings          []FieldMapping    `json:"fieldMappings"`
	SkipLogic              []SkipLogicRule   `json:"skipLogic,omitempty"`
	ConditionalShows       []ConditionalShow `json:"conditionalShows,omitempty"`
	MinTierLevel           SubscriptionTier  `json:"minTierLevel,omitempty"`
	JobTypes               []JobType         `json:"jobTypes,omitempty"`
}

// TieredQuestions buckets a working set by interview priority band.
type TieredQuestions struct {
	Tier1 []Question `json:"tier1"`
	Tier2 []Question `json:"tier2"`
	Tier3 []Question `json:"tier3"`
	Tier4 []Question `json:"tier4"`
}

// QuestionPlan is the working set computed for one interview context.
type QuestionPlan struct {
	Questions        []Question      `json:"questions"`
	Tiered           TieredQuestions `json:"tieredQuestions"`
	TotalQuestions   int             `json:"totalQuestionsCount"`
	EstimatedMinutes int             `json:"estimatedDurationMinutes"`
	StandardsCovered []string        `json:"standardsCovered"`
}

// InterviewContext carries the session inputs that shape the working set.
// Postcode is passed through for downstream building-code routing and is
// never interpreted by the engine itself.
type InterviewContext struct {
	JobType  JobType          `json:"jobType"`
	Postcode string           `json:"postcode,omitempty"`
	UserTier SubscriptionTier `json:"userTierLevel,omitempty"`
	UserID   string           `json:"userId,omitempty"`
}

// FieldPopulation is one populated CRM form field with its provenance.
// Source is "answer" for direct mappings or "transformer:<name>" for
// derived ones.
type FieldPopulation struct {
	FormFieldID string      `json:"formFieldId"`
	Value       AnswerValue `json:"value"`
	Confidence  int         `json:"confidence"`
	Source      string      `json:"source"`
}
