package turk

import (
	"errors"
	"reflect"
	"testing"
)

func TestRewardFragment(t *testing.T) {
	fs, err := rewardFragment(Params{
		"Reward": Reward{Amount: "0.25", CurrencyCode: "USD"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []field{
		{"Reward.1.Amount", "0.25"},
		{"Reward.1.CurrencyCode", "USD"},
	}
	if !reflect.DeepEqual(fs, want) {
		t.Errorf("Expected %v, got %v", want, fs)
	}
}

func TestRewardFragment_FormattedPrice(t *testing.T) {
	fs, err := rewardFragment(Params{
		"Reward": Reward{Amount: "1.00", CurrencyCode: "USD", FormattedPrice: "$1.00"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	last := fs[len(fs)-1]
	if last.key != "Reward.1.FormattedPrice" || last.value != "$1.00" {
		t.Errorf("Expected trailing FormattedPrice field, got %v", last)
	}
}

func TestRewardFragment_Missing(t *testing.T) {
	_, err := rewardFragment(Params{})

	var miss *MissingParameterError
	if !errors.As(err, &miss) {
		t.Fatalf("Expected MissingParameterError, got %v", err)
	}
	if miss.Key != "Reward" {
		t.Errorf("Expected key 'Reward', got %q", miss.Key)
	}
}

func TestKeywordsFragment(t *testing.T) {
	fs, err := keywordsFragment(Params{
		"Keywords": []string{"survey", "writing", "quick"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []field{{"Keywords", "survey,writing,quick"}}
	if !reflect.DeepEqual(fs, want) {
		t.Errorf("Expected %v, got %v", want, fs)
	}
}

func TestKeywordsFragment_PlainString(t *testing.T) {
	fs, err := keywordsFragment(Params{"Keywords": "survey,writing"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fs[0].value != "survey,writing" {
		t.Errorf("Expected pass-through value, got %q", fs[0].value)
	}
}

func TestQualificationFragment_RoundTrip(t *testing.T) {
	// First requirement carries an IntegerValue and no locale; the second
	// carries two locale values. Blocks must be 1-indexed in input order,
	// including the nested locale indices.
	fs, err := qualificationFragment(Params{
		"QualificationRequirement": []QualificationRequirement{
			{
				QualificationTypeID: "QUAL-1",
				Comparator:          ComparatorGreaterThanOrEqualTo,
				IntegerValue:        Int(90),
			},
			{
				QualificationTypeID: "QUAL-2",
				Comparator:          ComparatorIn,
				LocaleValues: []Locale{
					{Country: "US", Subdivision: "CA"},
					{Country: "GB"},
				},
				RequiredToPreview: Bool(true),
			},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []field{
		{"QualificationRequirement.1.QualificationTypeId", "QUAL-1"},
		{"QualificationRequirement.1.Comparator", "GreaterThanOrEqualTo"},
		{"QualificationRequirement.1.IntegerValue", "90"},
		{"QualificationRequirement.2.QualificationTypeId", "QUAL-2"},
		{"QualificationRequirement.2.Comparator", "In"},
		{"QualificationRequirement.2.LocaleValue.1.Country", "US"},
		{"QualificationRequirement.2.LocaleValue.1.Subdivision", "CA"},
		{"QualificationRequirement.2.LocaleValue.2.Country", "GB"},
		{"QualificationRequirement.2.RequiredToPreview", "true"},
	}
	if !reflect.DeepEqual(fs, want) {
		t.Errorf("Expected:\n%v\ngot:\n%v", want, fs)
	}
}

func TestQualificationFragment_MissingComparator(t *testing.T) {
	_, err := qualificationFragment(Params{
		"QualificationRequirement": []QualificationRequirement{
			{QualificationTypeID: "QUAL-1"},
		},
	})

	var miss *MissingParameterError
	if !errors.As(err, &miss) {
		t.Fatalf("Expected MissingParameterError, got %v", err)
	}
	if miss.Key != "QualificationRequirement.1.Comparator" {
		t.Errorf("Expected comparator key, got %q", miss.Key)
	}
}

func TestQualificationFragment_MissingTopLevelKey(t *testing.T) {
	_, err := qualificationFragment(Params{})

	var miss *MissingParameterError
	if !errors.As(err, &miss) {
		t.Fatalf("Expected MissingParameterError, got %v", err)
	}
	if miss.Key != "QualificationRequirement" {
		t.Errorf("Expected key 'QualificationRequirement', got %q", miss.Key)
	}
}

func TestLayoutFragment(t *testing.T) {
	fs, err := layoutFragment(Params{
		"HITLayoutParameter": []HITLayoutParameter{
			{Name: "image_url", Value: "https://example.com/1.jpg"},
			{Name: "caption", Value: "A bridge"},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []field{
		{"HITLayoutParameter.1.Name", "image_url"},
		{"HITLayoutParameter.1.Value", "https://example.com/1.jpg"},
		{"HITLayoutParameter.2.Name", "caption"},
		{"HITLayoutParameter.2.Value", "A bridge"},
	}
	if !reflect.DeepEqual(fs, want) {
		t.Errorf("Expected %v, got %v", want, fs)
	}
}

func TestLayoutFragment_MissingValue(t *testing.T) {
	_, err := layoutFragment(Params{
		"HITLayoutParameter": []HITLayoutParameter{{Name: "image_url"}},
	})

	var miss *MissingParameterError
	if !errors.As(err, &miss) {
		t.Fatalf("Expected MissingParameterError, got %v", err)
	}
	if miss.Key != "HITLayoutParameter.1.Value" {
		t.Errorf("Expected value key, got %q", miss.Key)
	}
}

func TestNotificationFragment_SingleEventType(t *testing.T) {
	// A single event type is emitted once, at the notification's own index.
	fs, err := notificationFragment(Params{
		"Notification": []Notification{
			{
				Destination: "https://example.com/notify",
				Transport:   TransportREST,
				Version:     "2006-05-05",
				EventTypes:  []string{EventAssignmentSubmitted},
			},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []field{
		{"Notification.1.Destination", "https://example.com/notify"},
		{"Notification.1.Transport", "REST"},
		{"Notification.1.Version", "2006-05-05"},
		{"Notification.1.EventType", "AssignmentSubmitted"},
	}
	if !reflect.DeepEqual(fs, want) {
		t.Errorf("Expected %v, got %v", want, fs)
	}
}

func TestNotificationFragment_MultipleEventTypes(t *testing.T) {
	// Several event types are each emitted at the event's own position in
	// the event list, not the notification's index. Legacy wire behavior.
	fs, err := notificationFragment(Params{
		"Notification": []Notification{
			{
				Destination: "https://example.com/notify",
				Transport:   TransportREST,
				Version:     "2006-05-05",
				EventTypes: []string{
					EventAssignmentSubmitted,
					EventAssignmentReturned,
					EventHITExpired,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tail := fs[len(fs)-3:]
	want := []field{
		{"Notification.1.EventType", "AssignmentSubmitted"},
		{"Notification.2.EventType", "AssignmentReturned"},
		{"Notification.3.EventType", "HITExpired"},
	}
	if !reflect.DeepEqual(tail, want) {
		t.Errorf("Expected %v, got %v", want, tail)
	}
}

func TestNotificationFragment_NoEventTypes(t *testing.T) {
	_, err := notificationFragment(Params{
		"Notification": []Notification{
			{
				Destination: "https://example.com/notify",
				Transport:   TransportREST,
				Version:     "2006-05-05",
			},
		},
	})

	var miss *MissingParameterError
	if !errors.As(err, &miss) {
		t.Fatalf("Expected MissingParameterError, got %v", err)
	}
	if miss.Key != "Notification.1.EventType" {
		t.Errorf("Expected event type key, got %q", miss.Key)
	}
}

func TestOptionalFragment(t *testing.T) {
	fn := optionalFragment("Keywords", keywordsFragment)

	fs, err := fn(Params{})
	if err != nil {
		t.Fatalf("Unexpected error for absent key: %v", err)
	}
	if fs != nil {
		t.Errorf("Expected no fields for absent key, got %v", fs)
	}

	fs, err = fn(Params{"Keywords": []string{"a", "b"}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(fs) != 1 || fs[0].value != "a,b" {
		t.Errorf("Expected encoded keywords, got %v", fs)
	}
}
