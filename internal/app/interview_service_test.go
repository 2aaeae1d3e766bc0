package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/app"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/infra/memory"
)

func TestStartPlansForTier(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	standard, err := service.Start(ctx, domain.InterviewContext{JobType: domain.JobWaterDamage, UserTier: domain.TierStandard})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if standard.Plan.TotalQuestions != 4 {
		t.Fatalf("standard tier plan has %d questions, want 4", standard.Plan.TotalQuestions)
	}
	if standard.FirstQuestion == nil || standard.FirstQuestion.ID != "water_source" {
		t.Fatalf("first question = %+v, want water_source", standard.FirstQuestion)
	}

	premium, err := service.Start(ctx, domain.InterviewContext{JobType: domain.JobWaterDamage, UserTier: domain.TierPremium})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if premium.Plan.TotalQuestions != 5 {
		t.Fatalf("premium tier plan has %d questions, want 5", premium.Plan.TotalQuestions)
	}
}

func TestStartRejectsUnknownJobType(t *testing.T) {
	service := newTestService()
	_, err := service.Start(context.Background(), domain.InterviewContext{JobType: domain.JobType("flood")})
	if !errors.Is(err, domain.ErrUnknownJobType) {
		t.Fatalf("expected ErrUnknownJobType, got %v", err)
	}
}

func TestAnswerFlowPopulatesFields(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	started, err := service.Start(ctx, domain.InterviewContext{JobType: domain.JobWaterDamage, UserTier: domain.TierStandard})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	result, err := service.SubmitAnswer(ctx, started.SessionID, "water_source", domain.StringAnswer("grey_water"))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Skip.ShouldSkip {
		t.Fatalf("grey water should not trigger the clean-water skip: %+v", result.Skip)
	}
	if result.Next == nil || result.Next.ID != "contamination_spread" {
		t.Fatalf("next = %+v, want contamination_spread", result.Next)
	}
	if len(result.Populations) != 2 {
		t.Fatalf("expected 2 populations, got %+v", result.Populations)
	}
	byField := map[string]domain.FieldPopulation{}
	for _, p := range result.Populations {
		byField[p.FormFieldID] = p
	}
	direct := byField["water_source"]
	if direct.Confidence != 95 || direct.Source != "answer" {
		t.Fatalf("direct population = %+v", direct)
	}
	derived := byField["water_category"]
	if derived.Value.Text() != "category_2" {
		t.Fatalf("derived value = %q, want category_2", derived.Value.Text())
	}
	if derived.Confidence != 72 {
		t.Fatalf("derived confidence = %d, want 72 (90%% of 80)", derived.Confidence)
	}
	if derived.Source != "transformer:water_category" {
		t.Fatalf("derived source = %q", derived.Source)
	}

	if _, err := service.SubmitAnswer(ctx, started.SessionID, "contamination_spread", domain.StringAnswer("single_room")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := service.SubmitAnswer(ctx, started.SessionID, "moisture_mapping", domain.NumberAnswer(18)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	last, err := service.SubmitAnswer(ctx, started.SessionID, "pre_existing_damage", domain.StringAnswer("unsure"))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !last.Completed || last.Next != nil {
		t.Fatalf("expected completion, got %+v", last)
	}
	hesitant := last.Populations[0]
	if hesitant.Confidence != 60 {
		t.Fatalf("hesitant confidence = %d, want 60 (70%% of 86)", hesitant.Confidence)
	}

	populations, err := service.Populations(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("populations: %v", err)
	}
	wantFields := []string{"contamination_spread", "peak_moisture_content", "pre_existing_conditions", "water_category", "water_source"}
	if len(populations) != len(wantFields) {
		t.Fatalf("populations = %+v, want %d fields", populations, len(wantFields))
	}
	for i, want := range wantFields {
		if populations[i].FormFieldID != want {
			t.Fatalf("populations[%d] = %q, want %q", i, populations[i].FormFieldID, want)
		}
	}

	if _, err := service.SubmitAnswer(ctx, started.SessionID, "water_source", domain.StringAnswer("clean_water")); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted, got %v", err)
	}
}

func TestCleanWaterSkipsAhead(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	started, err := service.Start(ctx, domain.InterviewContext{JobType: domain.JobWaterDamage, UserTier: domain.TierStandard})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	result, err := service.SubmitAnswer(ctx, started.SessionID, "water_source", domain.StringAnswer("clean_water"))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !result.Skip.ShouldSkip || result.Skip.NextQuestionID != "moisture_mapping" {
		t.Fatalf("skip = %+v, want jump to moisture_mapping", result.Skip)
	}
	if result.Next == nil || result.Next.ID != "moisture_mapping" {
		t.Fatalf("next = %+v, want moisture_mapping", result.Next)
	}

	// pre_existing_damage is gated on the water being contaminated, so the
	// interview ends after the moisture reading.
	final, err := service.SubmitAnswer(ctx, started.SessionID, "moisture_mapping", domain.NumberAnswer(12))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !final.Completed {
		t.Fatalf("expected completion, got %+v", final)
	}
}

func TestSubmitRequiresKnownSessionAndQuestion(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	_, err := service.SubmitAnswer(ctx, "missing", "water_source", domain.StringAnswer("grey_water"))
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session error, got %v", err)
	}

	started, err := service.Start(ctx, domain.InterviewContext{JobType: domain.JobWaterDamage, UserTier: domain.TierStandard})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	_, err = service.SubmitAnswer(ctx, started.SessionID, "not_planned", domain.StringAnswer("x"))
	if !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected question error, got %v", err)
	}
}

func TestDescribeAndAbandon(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	started, err := service.Start(ctx, domain.InterviewContext{JobType: domain.JobWaterDamage, UserTier: domain.TierStandard})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := service.SubmitAnswer(ctx, started.SessionID, "water_source", domain.StringAnswer("grey_water")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	view, err := service.Describe(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if view.Answered != 1 || view.Total != 4 || view.Completed {
		t.Fatalf("view = %+v", view)
	}
	if view.NextQuestion == nil || view.NextQuestion.ID != "contamination_spread" {
		t.Fatalf("view next = %+v", view.NextQuestion)
	}

	next, err := service.NextQuestion(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if next == nil || next.ID != "contamination_spread" {
		t.Fatalf("next = %+v", next)
	}

	if err := service.Abandon(ctx, started.SessionID); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, err := service.Describe(ctx, started.SessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after abandon, got %v", err)
	}
}

func newTestService() *app.InterviewService {
	sessionStore := memory.NewSessionStore()
	libraryRepo := memory.NewLibraryRepository(memory.NewStaticLibraryLoader(fixtureQuestions()), 5*time.Minute)
	return app.NewInterviewService(sessionStore, libraryRepo)
}

func fixtureQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:                     "water_source",
			SequenceNumber:         1,
			Text:                   "What was the source of the water intrusion?",
			Type:                   domain.TypeSingleChoice,
			Options:                []domain.Option{{Value: "clean_water", Label: "Clean"}, {Value: "grey_water", Label: "Grey"}, {Value: "black_water", Label: "Black"}},
			StandardsReference:     []string{"S500 10.5.3 Category of water determination"},
			StandardsJustification: "The contamination category drives sanitisation and disposal decisions.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "water_source", Confidence: 95},
				{FormFieldID: "water_category", Confidence: 80, Transformer: "water_category"},
			},
			SkipLogic: []domain.SkipLogicRule{
				{AnswerValue: domain.StringAnswer("clean_water"), NextQuestionID: "moisture_mapping", Reason: "Category 1 water needs no contamination assessment"},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:                     "contamination_spread",
			SequenceNumber:         2,
			Text:                   "How far has the contaminated water spread?",
			Type:                   domain.TypeSingleChoice,
			Options:                []domain.Option{{Value: "single_room", Label: "One room"}, {Value: "multiple_rooms", Label: "Several rooms"}},
			StandardsReference:     []string{"S500 10.5.5 Extent of contamination"},
			StandardsJustification: "Contamination spread fixes the decontamination zone boundary.",
			FieldMappings:          []domain.FieldMapping{{FormFieldID: "contamination_spread", Confidence: 90}},
			JobTypes:               []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:                     "moisture_mapping",
			SequenceNumber:         3,
			Text:                   "What is the highest moisture content reading (% MC)?",
			Type:                   domain.TypeMeasurement,
			StandardsReference:     []string{"S500 12.3.1 Moisture mapping and monitoring"},
			StandardsJustification: "Peak structural moisture anchors the drying plan baseline.",
			FieldMappings:          []domain.FieldMapping{{FormFieldID: "peak_moisture_content", Confidence: 88}},
			JobTypes:               []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:                     "pre_existing_damage",
			SequenceNumber:         4,
			Text:                   "Describe any pre-existing damage noted during inspection.",
			Type:                   domain.TypeFreeText,
			StandardsReference:     []string{"S500 10.6.6 Pre-existing conditions"},
			StandardsJustification: "Documented pre-existing conditions protect the claim from disputes.",
			FieldMappings:          []domain.FieldMapping{{FormFieldID: "pre_existing_conditions", Confidence: 86}},
			ConditionalShows: []domain.ConditionalShow{
				{Field: "water_source", Operator: domain.OpNotEquals, Value: domain.StringAnswer("clean_water")},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:                     "clearance_verification",
			SequenceNumber:         5,
			Text:                   "Will third-party clearance verification be engaged?",
			Type:                   domain.TypeYesNo,
			StandardsReference:     []string{"S500 12.3.4 Monitoring frequency"},
			StandardsJustification: "Independent verification changes the completion documentation set.",
			FieldMappings:          []domain.FieldMapping{{FormFieldID: "clearance_verification", Confidence: 90}},
			MinTierLevel:           domain.TierPremium,
			JobTypes:               []domain.JobType{domain.JobWaterDamage},
		},
	}
}
