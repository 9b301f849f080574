package turk

import (
	"fmt"
	"strconv"
	"strings"
)

// field is one query-string entry. Assembly preserves field order, which the
// service ignores but which keeps generated URLs readable.
type field struct {
	key   string
	value string
}

// fragmentFunc serializes one structured parameter out of the merged bag
// into ordered query fragments. Every encoder fails with a
// MissingParameterError when its own top-level key is absent; wrap with
// optionalFragment for operations where the parameter may be omitted.
type fragmentFunc func(p Params) ([]field, error)

// optionalFragment suppresses the encoder entirely when its top-level key is
// absent from the bag.
func optionalFragment(key string, fn fragmentFunc) fragmentFunc {
	return func(p Params) ([]field, error) {
		if _, ok := p[key]; !ok {
			return nil, nil
		}
		return fn(p)
	}
}

// rewardFragment encodes the single per-request reward at index 1.
func rewardFragment(p Params) ([]field, error) {
	v, ok := p["Reward"]
	if !ok {
		return nil, &MissingParameterError{Key: "Reward"}
	}
	r, ok := v.(Reward)
	if !ok {
		return nil, fmt.Errorf("parameter Reward: expected turk.Reward, got %T", v)
	}

	fs := []field{
		{"Reward.1.Amount", r.Amount},
		{"Reward.1.CurrencyCode", r.CurrencyCode},
	}
	if r.FormattedPrice != "" {
		fs = append(fs, field{"Reward.1.FormattedPrice", r.FormattedPrice})
	}
	return fs, nil
}

// keywordsFragment joins the keyword list into a single comma-separated
// value. A plain string passes through unchanged.
func keywordsFragment(p Params) ([]field, error) {
	v, ok := p["Keywords"]
	if !ok {
		return nil, &MissingParameterError{Key: "Keywords"}
	}

	switch kw := v.(type) {
	case []string:
		return []field{{"Keywords", strings.Join(kw, ",")}}, nil
	case string:
		return []field{{"Keywords", kw}}, nil
	default:
		return nil, fmt.Errorf("parameter Keywords: expected []string or string, got %T", v)
	}
}

// qualificationFragment encodes a 1-indexed qualification requirement list,
// with nested 1-indexed locale values.
func qualificationFragment(p Params) ([]field, error) {
	v, ok := p["QualificationRequirement"]
	if !ok {
		return nil, &MissingParameterError{Key: "QualificationRequirement"}
	}
	var reqs []QualificationRequirement
	switch q := v.(type) {
	case []QualificationRequirement:
		reqs = q
	case QualificationRequirement:
		reqs = []QualificationRequirement{q}
	default:
		return nil, fmt.Errorf("parameter QualificationRequirement: expected []turk.QualificationRequirement, got %T", v)
	}

	var fs []field
	for i, q := range reqs {
		prefix := fmt.Sprintf("QualificationRequirement.%d.", i+1)

		if q.QualificationTypeID == "" {
			return nil, &MissingParameterError{Key: prefix + "QualificationTypeId"}
		}
		if q.Comparator == "" {
			return nil, &MissingParameterError{Key: prefix + "Comparator"}
		}
		fs = append(fs,
			field{prefix + "QualificationTypeId", q.QualificationTypeID},
			field{prefix + "Comparator", q.Comparator},
		)

		if q.IntegerValue != nil {
			fs = append(fs, field{prefix + "IntegerValue", strconv.Itoa(*q.IntegerValue)})
		}
		for j, loc := range q.LocaleValues {
			lp := fmt.Sprintf("%sLocaleValue.%d.", prefix, j+1)
			if loc.Country == "" {
				return nil, &MissingParameterError{Key: lp + "Country"}
			}
			fs = append(fs, field{lp + "Country", loc.Country})
			if loc.Subdivision != "" {
				fs = append(fs, field{lp + "Subdivision", loc.Subdivision})
			}
		}
		if q.RequiredToPreview != nil {
			fs = append(fs, field{prefix + "RequiredToPreview", strconv.FormatBool(*q.RequiredToPreview)})
		}
	}
	return fs, nil
}

// layoutFragment encodes a 1-indexed HIT layout parameter list.
func layoutFragment(p Params) ([]field, error) {
	v, ok := p["HITLayoutParameter"]
	if !ok {
		return nil, &MissingParameterError{Key: "HITLayoutParameter"}
	}
	params, ok := v.([]HITLayoutParameter)
	if !ok {
		return nil, fmt.Errorf("parameter HITLayoutParameter: expected []turk.HITLayoutParameter, got %T", v)
	}

	var fs []field
	for i, lp := range params {
		prefix := fmt.Sprintf("HITLayoutParameter.%d.", i+1)
		if lp.Name == "" {
			return nil, &MissingParameterError{Key: prefix + "Name"}
		}
		if lp.Value == "" {
			return nil, &MissingParameterError{Key: prefix + "Value"}
		}
		fs = append(fs, field{prefix + "Name", lp.Name}, field{prefix + "Value", lp.Value})
	}
	return fs, nil
}

// notificationFragment encodes a 1-indexed notification list.
//
// EventType indexing carries a wire-format quirk: a single event type is
// emitted once at the notification's own index, but when a notification has
// several event types each one is emitted at the event's own position in the
// event list, not the notification's index. The quirk is preserved for wire
// compatibility with the deployed service.
func notificationFragment(p Params) ([]field, error) {
	v, ok := p["Notification"]
	if !ok {
		return nil, &MissingParameterError{Key: "Notification"}
	}
	var notes []Notification
	switch n := v.(type) {
	case []Notification:
		notes = n
	case Notification:
		notes = []Notification{n}
	default:
		return nil, fmt.Errorf("parameter Notification: expected []turk.Notification, got %T", v)
	}

	var fs []field
	for i, n := range notes {
		prefix := fmt.Sprintf("Notification.%d.", i+1)

		if n.Destination == "" {
			return nil, &MissingParameterError{Key: prefix + "Destination"}
		}
		if n.Transport == "" {
			return nil, &MissingParameterError{Key: prefix + "Transport"}
		}
		if n.Version == "" {
			return nil, &MissingParameterError{Key: prefix + "Version"}
		}
		fs = append(fs,
			field{prefix + "Destination", n.Destination},
			field{prefix + "Transport", n.Transport},
			field{prefix + "Version", n.Version},
		)

		switch len(n.EventTypes) {
		case 0:
			return nil, &MissingParameterError{Key: prefix + "EventType"}
		case 1:
			fs = append(fs, field{prefix + "EventType", n.EventTypes[0]})
		default:
			for j, ev := range n.EventTypes {
				fs = append(fs, field{fmt.Sprintf("Notification.%d.EventType", j+1), ev})
			}
		}
	}
	return fs, nil
}
