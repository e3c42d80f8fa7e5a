package notifications

import (
	"carwash/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/samber/lo"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrInvalidPhone = errors.New("invalid phone number")

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends reminders as SMS through the Twilio Messages API.
type TwilioNotifier struct {
	api         messageCreator
	from        string
	countryCode string
}

var _ interfaces.INotifier = (*TwilioNotifier)(nil)

func NewTwilioNotifier(accountSID, authToken, from, defaultCountryCode string) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioNotifier{api: client.Api, from: from, countryCode: defaultCountryCode}
}

func (n *TwilioNotifier) Send(ctx context.Context, phone, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	to, err := E164(phone, n.countryCode)
	if err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(message)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		log.Printf("[reminder][twilio] create message failed to=%s err=%v", to, err)
		return "", fmt.Errorf("twilio create message: %w", err)
	}
	return lo.FromPtr(resp.Sid), nil
}

// E164 turns a local number such as 8888-8888 into +50688888888 using the
// default country code. Numbers already starting with + keep their prefix.
func E164(phone, defaultCountryCode string) (string, error) {
	phone = strings.TrimSpace(phone)
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return "", ErrInvalidPhone
	}
	if strings.HasPrefix(phone, "+") {
		return "+" + digits, nil
	}
	return "+" + strings.TrimPrefix(defaultCountryCode, "+") + digits, nil
}
