package extract

import (
	"testing"

	"github.com/clauseguard/clauseguard/internal/model"
)

const sampleContract = `SERVICE AGREEMENT

BETWEEN Acme Software Pvt Ltd AND Bharat Retail Ltd dated 15 March 2024.

The Vendor shall provide monthly maintenance reports and source code.
Payment of Rs. 2,00,000/- shall be made within 45 days of invoice.
The Vendor guarantees 99.5% uptime with a response time of 4 hours.
Milestone 1: Requirements sign-off. Phase 2: Development complete.
All intellectual property shall vest in the Client upon final payment.
Confidentiality period of 3 years applies after termination.
Either party may terminate this agreement with 30 days written notice.
Maximum liability shall not exceed Rs. 5,00,000.
This agreement is subject to the exclusive jurisdiction of the courts in Mumbai.
`

func TestEntities_AllCategoriesPresent(t *testing.T) {
	bag := Entities("no entities here at all")

	if len(bag) != len(model.EntityCategories) {
		t.Errorf("Expected %d categories, got %d", len(model.EntityCategories), len(bag))
	}
	for _, cat := range model.EntityCategories {
		values, ok := bag[cat]
		if !ok {
			t.Errorf("Missing category %q", cat)
			continue
		}
		if values == nil {
			t.Errorf("Category %q should be an empty slice, not nil", cat)
		}
		if len(values) != 0 {
			t.Errorf("Expected no values for %q, got %v", cat, values)
		}
	}
}

func TestEntities_SampleContract(t *testing.T) {
	bag := Entities(sampleContract)

	if !contains(bag[model.EntityParties], "Acme Software Pvt Ltd") {
		t.Errorf("Expected first party extracted, got %v", bag[model.EntityParties])
	}
	if !contains(bag[model.EntityParties], "Bharat Retail Ltd") {
		t.Errorf("Expected second party extracted, got %v", bag[model.EntityParties])
	}
	if !contains(bag[model.EntityDates], "15 March 2024") {
		t.Errorf("Expected date extracted, got %v", bag[model.EntityDates])
	}
	if len(bag[model.EntityAmounts]) == 0 {
		t.Error("Expected rupee amounts extracted")
	}
	if !contains(bag[model.EntityJurisdiction], "Mumbai") {
		t.Errorf("Expected Mumbai jurisdiction, got %v", bag[model.EntityJurisdiction])
	}
	if len(bag[model.EntitySLAs]) < 2 {
		t.Errorf("Expected uptime and response time SLAs, got %v", bag[model.EntitySLAs])
	}
	if len(bag[model.EntityMilestones]) == 0 {
		t.Error("Expected milestones extracted")
	}
	if !contains(bag[model.EntityNoticePeriods], "30 notice") {
		t.Errorf("Expected notice period, got %v", bag[model.EntityNoticePeriods])
	}
	if len(bag[model.EntityLiabilityCaps]) == 0 {
		t.Error("Expected liability cap extracted")
	}
	if len(bag[model.EntityIPOwnership]) == 0 {
		t.Error("Expected IP ownership extracted")
	}
	if len(bag[model.EntityConfidentiality]) == 0 {
		t.Error("Expected confidentiality scope extracted")
	}
	if len(bag[model.EntityTermination]) == 0 {
		t.Error("Expected termination condition extracted")
	}
}

func TestEntities_DeduplicatedAndSorted(t *testing.T) {
	text := "Payment of Rs. 50,000 now and Rs. 50,000 later, then Rs. 10,000 extra."
	bag := Entities(text)

	amounts := bag[model.EntityAmounts]
	if len(amounts) != 2 {
		t.Fatalf("Expected 2 distinct amounts, got %v", amounts)
	}
	if amounts[0] > amounts[1] {
		t.Errorf("Expected sorted output, got %v", amounts)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
