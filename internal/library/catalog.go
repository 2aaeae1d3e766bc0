package library

import "github.com/CleanExpo/RestoreAssist-sub016/internal/domain"

// Default builds the validated library from the shipped catalogue.
func Default() (*Library, error) {
	return New(DefaultQuestions())
}

// DefaultQuestions returns the shipped restoration interview catalogue.
// Sequence numbers run per discipline, so parallel flows reuse the same
// bands; the priority sort's tie-breakers keep the result deterministic.
func DefaultQuestions() []domain.Question {
	return []domain.Question{
		// Water damage
		{
			ID:             "water_source",
			SequenceNumber: 1,
			Text:           "What was the source of the water intrusion?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "clean_water", Label: "Clean supply line or rainwater"},
				{Value: "grey_water", Label: "Appliance discharge or overflow"},
				{Value: "black_water", Label: "Sewage or rising flood water", FollowUpQuestionID: "occupant_exposure"},
				{Value: "unknown", Label: "Not yet determined"},
			},
			StandardsReference:     []string{"S500 10.5.3 Category of water determination"},
			StandardsJustification: "The contamination category of the intruding water dictates sanitisation, disposal and PPE decisions throughout the job.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "water_source", Confidence: 95},
				{FormFieldID: "water_category", Confidence: 80, Transformer: "water_category"},
			},
			SkipLogic: []domain.SkipLogicRule{
				{
					AnswerValue:    domain.StringAnswer("clean_water"),
					NextQuestionID: "moisture_mapping",
					Reason:         "Category 1 water needs no contamination assessment",
				},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:                     "standing_water_present",
			SequenceNumber:         4,
			Text:                   "Is standing water still present at the site?",
			Type:                   domain.TypeYesNo,
			StandardsReference:     []string{"S500 12.2.2 Water extraction priorities"},
			StandardsJustification: "Standing water volume determines extraction equipment and the urgency of the initial response.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "standing_water", Confidence: 95},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:             "contamination_spread",
			SequenceNumber: 6,
			Text:           "How far has the contaminated water spread through the property?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "single_room", Label: "Contained to one room"},
				{Value: "multiple_rooms", Label: "Several rooms on one level"},
				{Value: "whole_floor", Label: "An entire floor"},
				{Value: "multi_storey", Label: "Multiple storeys"},
			},
			StandardsReference:     []string{"S500 10.5.5 Extent of contamination"},
			StandardsJustification: "Contamination spread fixes the boundary of the decontamination zone and the scale of any demolition.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "contamination_spread", Confidence: 90},
			},
			ConditionalShows: []domain.ConditionalShow{
				{Field: "water_source", Operator: domain.OpNotEquals, Value: domain.StringAnswer("clean_water")},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:             "occupant_exposure",
			SequenceNumber: 7,
			Text:           "Have occupants come into direct contact with the contaminated water?",
			Type:           domain.TypeYesNo,
			StandardsReference: []string{
				"S500 10.5.4 Occupant health considerations",
				"S540 9.2 Exposure assessment",
			},
			StandardsJustification: "Direct contact with Category 3 water triggers occupant health advice and may require medical referral.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "occupant_exposure", Confidence: 93},
			},
			ConditionalShows: []domain.ConditionalShow{
				{Field: "water_source", Operator: domain.OpEquals, Value: domain.StringAnswer("black_water")},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:                     "moisture_mapping",
			SequenceNumber:         9,
			Text:                   "What is the highest moisture content reading recorded in structural materials (% MC)?",
			Type:                   domain.TypeMeasurement,
			StandardsReference:     []string{"S500 12.3.1 Moisture mapping and monitoring"},
			StandardsJustification: "Peak structural moisture content anchors the drying plan and the daily monitoring baseline.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "peak_moisture_content", Confidence: 88},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:             "structural_drying_plan",
			SequenceNumber: 11,
			Text:           "Which drying approach is planned for the affected structure?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "in_place_drying", Label: "Dry in place"},
				{Value: "controlled_demolition", Label: "Remove and replace"},
				{Value: "combination", Label: "Combination of both"},
			},
			StandardsReference:     []string{"S500 13.1 Structural drying strategy"},
			StandardsJustification: "The drying approach decides equipment allocation and whether make-safe demolition is scoped.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "drying_approach", Confidence: 87},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:             "equipment_power_load",
			SequenceNumber: 12,
			Text:           "How many dedicated power circuits are available for drying equipment?",
			Type:           domain.TypeNumeric,
			StandardsReference: []string{
				"S500 13.4.2 Equipment power requirements",
				"NCC 2022 Vol2 Services and equipment",
			},
			StandardsJustification: "Available circuits cap how many air movers and dehumidifiers can run without overloading the site supply.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "available_power_circuits", Confidence: 86},
			},
			MinTierLevel: domain.TierPremium,
			JobTypes:     []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:             "moisture_monitoring_interval",
			SequenceNumber: 13,
			Text:           "How frequently will moisture readings be taken during drying?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "daily", Label: "Daily site visits"},
				{Value: "twice_daily", Label: "Twice daily"},
				{Value: "continuous_remote", Label: "Continuous remote sensors"},
			},
			StandardsReference:     []string{"S500 12.3.4 Monitoring frequency"},
			StandardsJustification: "Large losses justify denser monitoring so drying stalls are caught before secondary damage sets in.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "monitoring_interval", Confidence: 90},
			},
			ConditionalShows: []domain.ConditionalShow{
				{Field: "affected_area_percentage", Operator: domain.OpGreaterThan, Value: domain.NumberAnswer(25)},
			},
			MinTierLevel: domain.TierEnterprise,
			JobTypes:     []domain.JobType{domain.JobWaterDamage},
		},
		{
			ID:             "subfloor_ventilation_check",
			SequenceNumber: 13,
			Text:           "Is the subfloor ventilation adequate to support in-place drying?",
			Type:           domain.TypeYesNo,
			StandardsReference: []string{
				"S500 13.2.5 Subfloor drying",
				"NCC 2022 Vol2 H4 Subfloor ventilation",
			},
			StandardsJustification: "Inadequate subfloor airflow rules out in-place drying and pushes the plan toward access cuts.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "subfloor_ventilation_adequate", Confidence: 87},
			},
			ConditionalShows: []domain.ConditionalShow{
				{Field: "materials_affected", Operator: domain.OpIncludes, Value: domain.StringAnswer("subfloor")},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage},
		},

		// Shared between water and mould flows
		{
			ID:             "time_since_loss",
			SequenceNumber: 3,
			Text:           "How long ago did the water intrusion or moisture event occur?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "under_24h", Label: "Within the last 24 hours"},
				{Value: "one_to_three_days", Label: "1 to 3 days ago"},
				{Value: "over_three_days", Label: "3 days to a week ago"},
				{Value: "over_one_week", Label: "More than a week ago"},
			},
			StandardsReference: []string{
				"S500 12.1.6 Time elapsed since intrusion",
				"S520 3.3 Condition 3 amplification",
			},
			StandardsJustification: "Microbial amplification begins within 24 to 48 hours, so elapsed time separates drying jobs from remediation jobs.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "loss_age", Confidence: 92},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage, domain.JobMouldRemediation},
		},
		{
			ID:             "materials_affected",
			SequenceNumber: 10,
			Text:           "Which building materials are wet or show visible damage?",
			Type:           domain.TypeMultiSelect,
			Options: []domain.Option{
				{Value: "drywall", Label: "Plasterboard / drywall"},
				{Value: "carpet", Label: "Carpet and underlay"},
				{Value: "hardwood", Label: "Hardwood flooring"},
				{Value: "insulation", Label: "Wall or ceiling insulation"},
				{Value: "concrete", Label: "Concrete slab"},
				{Value: "subfloor", Label: "Timber subfloor"},
			},
			StandardsReference: []string{
				"S500 13.2 Material-specific drying",
				"S520 12.2.2 Porous material disposition",
			},
			StandardsJustification: "Porous and semi-porous materials drive the restore-versus-replace call and the containment boundary.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "affected_materials", Confidence: 90},
				{FormFieldID: "affected_material_count", Confidence: 72, Transformer: "selection_count"},
			},
			SkipLogic: []domain.SkipLogicRule{
				{
					AnswerValue:    domain.ListAnswer("hardwood", "subfloor"),
					NextQuestionID: "structural_drying_plan",
					Reason:         "Dense structural materials need a specialty drying plan",
				},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage, domain.JobMouldRemediation},
		},

		// Shared between water, mould and fire flows
		{
			ID:             "affected_area_percentage",
			SequenceNumber: 2,
			Text:           "Approximately what percentage of the property's floor area is affected?",
			Type:           domain.TypeNumeric,
			StandardsReference: []string{
				"S500 10.5.5 Extent of affected area",
				"S520 5.2 Scope of work",
			},
			StandardsJustification: "Affected-area percentage scales labour, equipment counts and the estimated drying or remediation window.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "affected_area_percentage", Confidence: 90},
				{FormFieldID: "affected_extent", Confidence: 75, Transformer: "area_band"},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage, domain.JobMouldRemediation, domain.JobFireSmoke},
		},
		{
			ID:             "hvac_affected",
			SequenceNumber: 8,
			Text:           "Did water, mould or smoke reach ducted heating, cooling or ventilation systems?",
			Type:           domain.TypeYesNo,
			StandardsReference: []string{
				"S500 13.6 HVAC system drying",
				"AS3666 2.5 Microbial control in air-handling systems",
			},
			StandardsJustification: "Contaminated air-handling systems spread damage between rooms and need specialist cleaning before reuse.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "hvac_affected", Confidence: 91},
				{FormFieldID: "hvac_remediation_required", Confidence: 78, Transformer: "affirmative_flag"},
			},
			JobTypes: []domain.JobType{domain.JobWaterDamage, domain.JobMouldRemediation, domain.JobFireSmoke},
		},

		// Mould remediation
		{
			ID:             "mould_visible_extent",
			SequenceNumber: 1,
			Text:           "How extensive is the visible mould growth?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "under_one_sqm", Label: "Under one square metre"},
				{Value: "one_to_ten_sqm", Label: "One to ten square metres"},
				{Value: "over_ten_sqm", Label: "More than ten square metres"},
				{Value: "hidden_suspected", Label: "Hidden growth suspected", FollowUpQuestionID: "moisture_source_identified"},
			},
			StandardsReference:     []string{"S520 12.1.2 Extent of visible growth"},
			StandardsJustification: "Visible growth area sets the remediation level and whether engineered containment is mandatory.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "visible_mould_extent", Confidence: 93},
				{FormFieldID: "containment_level", Confidence: 80, Transformer: "containment_scale"},
			},
			SkipLogic: []domain.SkipLogicRule{
				{
					AnswerValue:    domain.StringAnswer("under_one_sqm"),
					NextQuestionID: "moisture_source_identified",
					Reason:         "Small isolated growth does not require containment planning",
				},
			},
			JobTypes: []domain.JobType{domain.JobMouldRemediation},
		},
		{
			ID:                     "musty_odour_present",
			SequenceNumber:         3,
			Text:                   "Is a musty odour present in areas without visible growth?",
			Type:                   domain.TypeYesNo,
			StandardsReference:     []string{"S520 12.1.4 Indicators of hidden growth"},
			StandardsJustification: "Odour without visible growth points at concealed amplification behind linings or under floors.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "musty_odour", Confidence: 90},
			},
			JobTypes: []domain.JobType{domain.JobMouldRemediation},
		},
		{
			ID:                     "moisture_source_identified",
			SequenceNumber:         4,
			Text:                   "Has the underlying moisture source been identified and corrected?",
			Type:                   domain.TypeYesNo,
			StandardsReference:     []string{"S520 12.1.1 Moisture problem correction"},
			StandardsJustification: "Remediation fails if the underlying moisture source keeps feeding growth, so the source must be found first.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "moisture_source_identified", Confidence: 95},
			},
			JobTypes: []domain.JobType{domain.JobMouldRemediation},
		},
		{
			ID:             "containment_assessment",
			SequenceNumber: 6,
			Text:           "What level of containment is feasible in the affected area?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "none_feasible", Label: "No containment possible"},
				{Value: "local_poly", Label: "Local polyethylene enclosure"},
				{Value: "full_negative_pressure", Label: "Full negative-pressure containment"},
			},
			StandardsReference:     []string{"S520 12.2.1 Containment selection"},
			StandardsJustification: "Containment feasibility decides whether occupants can stay and how the work area is isolated.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "containment_plan", Confidence: 89},
			},
			ConditionalShows: []domain.ConditionalShow{
				{Field: "mould_visible_extent", Operator: domain.OpNotEquals, Value: domain.StringAnswer("under_one_sqm")},
			},
			JobTypes: []domain.JobType{domain.JobMouldRemediation},
		},
		{
			ID:             "clearance_testing",
			SequenceNumber: 9,
			Text:           "What post-remediation verification will be performed?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "visual_only", Label: "Visual inspection only"},
				{Value: "surface_sampling", Label: "Surface sampling"},
				{Value: "air_sampling", Label: "Air sampling by an IEP"},
			},
			StandardsReference: []string{
				"S520 12.2.9 Post-remediation verification",
				"AS3666 3.2 Verification of microbial control",
			},
			StandardsJustification: "The verification method fixes the acceptance criteria the remediation is signed off against.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "clearance_method", Confidence: 91},
			},
			MinTierLevel: domain.TierPremium,
			JobTypes:     []domain.JobType{domain.JobMouldRemediation},
		},

		// Fire and smoke
		{
			ID:             "smoke_residue_type",
			SequenceNumber: 1,
			Text:           "What type of smoke residue dominates the affected areas?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "wet_smoke", Label: "Wet smoke (smouldering, sticky)"},
				{Value: "dry_smoke", Label: "Dry smoke (fast burning)"},
				{Value: "protein_residue", Label: "Protein residue (kitchen fire)"},
				{Value: "fuel_oil_soot", Label: "Fuel or oil soot"},
			},
			StandardsReference:     []string{"S700 9.2 Residue classification"},
			StandardsJustification: "Residue chemistry dictates cleaning agents and whether surfaces can be restored or must be refinished.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "smoke_residue_type", Confidence: 94},
			},
			JobTypes: []domain.JobType{domain.JobFireSmoke},
		},
		{
			ID:                     "fire_origin_area",
			SequenceNumber:         3,
			Text:                   "Where in the property did the fire originate?",
			Type:                   domain.TypeLocation,
			StandardsReference:     []string{"S700 9.1 Source and spread assessment"},
			StandardsJustification: "The origin area anchors the spread model and where the heaviest structural checks are focused.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "fire_origin", Confidence: 92},
			},
			JobTypes: []domain.JobType{domain.JobFireSmoke},
		},
		{
			ID:             "structural_charring",
			SequenceNumber: 6,
			Text:           "Is there visible charring of structural framing members?",
			Type:           domain.TypeYesNo,
			StandardsReference: []string{
				"S700 10.3 Structural integrity",
				"NCC 2022 Vol1 B1 Structural provisions",
			},
			StandardsJustification: "Charred framing members need an engineer's assessment before any restoration work can proceed.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "structural_charring", Confidence: 93},
				{FormFieldID: "engineer_referral_required", Confidence: 76, Transformer: "affirmative_flag"},
			},
			JobTypes: []domain.JobType{domain.JobFireSmoke},
		},
		{
			ID:             "odour_treatment_scope",
			SequenceNumber: 10,
			Text:           "Which odour treatment pathway is planned?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "surface_cleaning", Label: "Surface cleaning only"},
				{Value: "thermal_fogging", Label: "Thermal fogging"},
				{Value: "ozone_treatment", Label: "Ozone treatment"},
				{Value: "hydroxyl_generation", Label: "Hydroxyl generation"},
			},
			StandardsReference:     []string{"S700 12.4 Odour management"},
			StandardsJustification: "The odour treatment pathway changes site evacuation needs and the equipment hire schedule.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "odour_treatment", Confidence: 88},
			},
			MinTierLevel: domain.TierPremium,
			JobTypes:     []domain.JobType{domain.JobFireSmoke},
		},

		// Biohazard
		{
			ID:             "biohazard_category",
			SequenceNumber: 1,
			Text:           "What class of biohazard is present at the scene?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "sewage_overflow", Label: "Sewage overflow"},
				{Value: "sharps_contamination", Label: "Sharps contamination"},
				{Value: "trauma_scene", Label: "Trauma or crime scene"},
				{Value: "chemical_spill", Label: "Chemical spill", FollowUpQuestionID: "waste_disposal_route"},
			},
			StandardsReference:     []string{"S540 9.1 Hazard categorization"},
			StandardsJustification: "The hazard class sets PPE, vaccination requirements and the waste stream the job must run through.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "biohazard_category", Confidence: 95},
			},
			SkipLogic: []domain.SkipLogicRule{
				{
					AnswerValue:    domain.StringAnswer("chemical_spill"),
					NextQuestionID: "waste_disposal_route",
					Reason:         "Chemical spills route straight to licensed disposal planning",
				},
			},
			JobTypes: []domain.JobType{domain.JobBiohazard},
		},
		{
			ID:             "ppe_requirements",
			SequenceNumber: 6,
			Text:           "Which protective equipment will attending technicians require?",
			Type:           domain.TypeCheckboxGroup,
			Options: []domain.Option{
				{Value: "p2_respirator", Label: "P2 respirator"},
				{Value: "full_face_respirator", Label: "Full-face respirator"},
				{Value: "tyvek_suit", Label: "Disposable coveralls"},
				{Value: "double_gloves", Label: "Double nitrile gloves"},
				{Value: "eye_protection", Label: "Sealed eye protection"},
			},
			StandardsReference:     []string{"S540 10.2 Personal protective equipment"},
			StandardsJustification: "Recording the PPE set justifies consumables on the invoice and evidences WHS compliance.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "ppe_required", Confidence: 90},
				{FormFieldID: "ppe_item_count", Confidence: 71, Transformer: "selection_count"},
			},
			JobTypes: []domain.JobType{domain.JobBiohazard},
		},
		{
			ID:             "waste_disposal_route",
			SequenceNumber: 9,
			Text:           "Through which route will contaminated waste be disposed?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "licensed_facility", Label: "Licensed waste facility"},
				{Value: "clinical_waste_contractor", Label: "Clinical waste contractor"},
				{Value: "onsite_treatment", Label: "On-site treatment"},
			},
			StandardsReference:     []string{"S540 11.3 Waste handling and disposal"},
			StandardsJustification: "Regulated waste must be tracked to a compliant route before any removal work starts.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "waste_route", Confidence: 89},
			},
			MinTierLevel: domain.TierPremium,
			JobTypes:     []domain.JobType{domain.JobBiohazard},
		},

		// Every job type
		{
			ID:             "emergency_mitigation_done",
			SequenceNumber: 4,
			Text:           "Has any emergency mitigation already been performed on site?",
			Type:           domain.TypeYesNo,
			StandardsReference: []string{
				"S500 11.2 Emergency response actions",
				"S700 8.1 Emergency services impact",
			},
			StandardsJustification: "Prior mitigation changes the baseline scope and may hide damage that still needs documenting.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "emergency_mitigation", Confidence: 92},
				{FormFieldID: "governing_standard", Confidence: 82, Transformer: "applicable_standard"},
			},
		},
		{
			ID:                     "power_available",
			SequenceNumber:         5,
			Text:                   "Is mains power available and safe to use at the site?",
			Type:                   domain.TypeYesNo,
			StandardsReference:     []string{"S500 11.1.2 Site safety survey"},
			StandardsJustification: "Dead or unsafe mains power forces generator hire and changes the first-day equipment plan.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "power_on_site", Confidence: 98},
			},
		},
		{
			ID:             "property_construction_era",
			SequenceNumber: 12,
			Text:           "When was the property constructed?",
			Type:           domain.TypeSingleChoice,
			Options: []domain.Option{
				{Value: "pre_1990", Label: "Before 1990"},
				{Value: "1990_2003", Label: "1990 to 2003"},
				{Value: "post_2003", Label: "After 2003"},
			},
			StandardsReference:     []string{"NCC 2022 Vol2 H1 Building era provisions"},
			StandardsJustification: "Construction era flags asbestos likelihood and which code edition the reinstatement must meet.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "construction_era", Confidence: 90},
				{FormFieldID: "asbestos_risk_level", Confidence: 72, Transformer: "era_asbestos_risk"},
			},
		},
		{
			ID:                     "pre_existing_damage",
			SequenceNumber:         14,
			Text:                   "Describe any pre-existing damage or conditions noted during inspection.",
			Type:                   domain.TypeFreeText,
			StandardsReference:     []string{"S500 10.6.6 Pre-existing conditions"},
			StandardsJustification: "Documented pre-existing conditions protect the claim from scope creep and later disputes.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "pre_existing_conditions", Confidence: 86},
			},
		},
		{
			ID:             "vulnerable_occupants",
			SequenceNumber: 15,
			Text:           "Are any occupants immunocompromised, asthmatic or otherwise at elevated risk?",
			Type:           domain.TypeYesNo,
			StandardsReference: []string{
				"S520 4.1 Occupant risk factors",
				"S500 10.5.4 Occupant health considerations",
			},
			StandardsJustification: "At-risk occupants can force relocation during works and stricter containment and clearance criteria.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "vulnerable_occupants", Confidence: 94},
			},
		},
		{
			ID:                     "insurance_claim_lodged",
			Text:                   "Has an insurance claim been lodged for this loss?",
			Type:                   domain.TypeYesNo,
			StandardsReference:     []string{"S500 10.1.2 Administrative documentation"},
			StandardsJustification: "Whether a claim exists changes the documentation package and who signs off on the scope.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "claim_lodged", Confidence: 97},
			},
		},
		{
			ID:                     "site_access_notes",
			Text:                   "Note any access restrictions, pets, security or safety constraints for attending crews.",
			Type:                   domain.TypeFreeText,
			StandardsReference:     []string{"S500 11.1.2 Site safety survey"},
			StandardsJustification: "Access constraints affect crew scheduling and must reach the job board before dispatch.",
			FieldMappings: []domain.FieldMapping{
				{FormFieldID: "site_access_notes", Confidence: 88},
			},
		},
	}
}
