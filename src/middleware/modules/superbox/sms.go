package superbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	helpers "superbox/src/middleware/helpers"
	api "superbox/src/middleware/helpers/api"

	"github.com/mitchellh/mapstructure"
)

// SMSType is the device "tags" filter. Values were found by trial and error.
type SMSType string

const (
	SMSRead   SMSType = "0"
	SMSUnread SMSType = "1"
	SMSSent   SMSType = "2"
	SMSAll    SMSType = "10"
)

var smsTypeNames = map[string]SMSType{
	"read":   SMSRead,
	"unread": SMSUnread,
	"sent":   SMSSent,
	"all":    SMSAll,
}

// ParseSMSType accepts a name (read, unread, sent, all) or a raw tag value.
func ParseSMSType(value string) (SMSType, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return SMSAll, nil
	}
	if t, ok := smsTypeNames[value]; ok {
		return t, nil
	}
	for _, t := range smsTypeNames {
		if string(t) == value {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown sms type %q", value)
}

func (t SMSType) Name() string {
	for name, v := range smsTypeNames {
		if v == t {
			return name
		}
	}
	return string(t)
}

// SMSTypeNames lists the accepted names in menu order.
func SMSTypeNames() []string {
	return []string{"all", "unread", "read", "sent"}
}

// ListMessages pages sms_data_total from the device, newest first. amount
// must be a multiple of 10; the device default is 500.
func (s *Session) ListMessages(amount string, tags SMSType) ([]Message, error) {
	// TODO: decode content. hint: decodeMessage and hex2char in the web UI's util.js
	if amount == "" {
		amount = helpers.DefaultAmount
	}
	if tags == "" {
		tags = SMSAll
	}

	raw, err := s.GetCommand([]string{"sms_data_total"}, map[string]string{
		"page":          "0",
		"data_per_page": amount,
		"mem_store":     "1",
		"tags":          string(tags),
		"order_by":      "order by id desc",
	})
	if err != nil {
		return nil, err
	}

	body, _ := raw.(map[string]any)
	list, _ := body["messages"].([]any)

	messages := make([]Message, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			s.logger.Warn(fmt.Sprintf("Skipping Message Entry %d, Not An Object (%v)", i, item))
			continue
		}
		messages = append(messages, Message(m))
	}

	if len(messages) > 0 && s.logger.IsVerbose() {
		pretty, _ := json.MarshalIndent(messages, "", "    ")
		s.logger.Verbose("get_sms()")
		s.logger.Verbose(string(pretty))
	}

	return messages, nil
}

// DeleteMessages removes messages by id. An unrecognised result code comes
// back as DeleteUnknown with an *UnexpectedResultError.
func (s *Session) DeleteMessages(ids []string) (DeleteResult, error) {
	ids = uniqueNames(ids)
	if len(ids) == 0 {
		return DeleteUnknown, errors.New("no message ids given")
	}

	joined := JoinMessageIDs(ids)
	resp, err := s.SetCommand(deleteGoformID, map[string]string{
		"msg_id":      joined,
		"notCallback": "true",
	})
	if err != nil {
		return DeleteUnknown, err
	}

	body, err := decodeObject(s.logger, resp.Body)
	if err != nil {
		return DeleteUnknown, err
	}

	raw, ok := resultCode(body["result"])
	result := DeleteUnknown
	if ok {
		result = ParseDeleteResult(raw)
	}

	s.logger.Verbose("remove_sms()")
	s.logger.Verbose(fmt.Sprintf("\tn: %q", joined))
	s.logger.Verbose(fmt.Sprintf("\tresult: %s", raw))

	if result == DeleteUnknown {
		s.logger.Warn(fmt.Sprintf("%s Returned Unexpected Result (%s)", deleteGoformID, raw))
		return result, &UnexpectedResultError{Operation: deleteGoformID, Raw: raw}
	}
	return result, nil
}

// JoinMessageIDs renders ids the way DELETE_SMS expects: "1;2;".
func JoinMessageIDs(ids []string) string {
	return strings.Join(ids, ";") + ";"
}

func (m Message) ID() string {
	return api.ToString(m["id"])
}

// TypeName renders the message tag for display. A missing tag is "-" and a
// tag outside the known set is shown raw.
func (m MessageSummary) TypeName() string {
	if m.Tag == "" {
		return "-"
	}
	t, err := ParseSMSType(m.Tag)
	if err != nil {
		return m.Tag
	}
	return t.Name()
}

// Summary decodes the commonly used fields. Numbers from the device are
// accepted where strings are expected.
func (m Message) Summary() (MessageSummary, error) {
	var summary MessageSummary
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &summary,
	})
	if err != nil {
		return summary, err
	}

	if err := decoder.Decode(map[string]any(m)); err != nil {
		return summary, fmt.Errorf("message summary decode: %w", err)
	}
	return summary, nil
}
