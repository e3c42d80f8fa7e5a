package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessages struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &twilioApi.ApiV2010Message{Sid: lo.ToPtr("SM0001")}, nil
}

func TestE164(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"8888-8888", "+50688888888"},
		{" 6666 6666 ", "+50666666666"},
		{"+1 (415) 555-0100", "+14155550100"},
	}
	for _, tc := range cases {
		got, err := E164(tc.in, "+506")
		if err != nil || got != tc.want {
			t.Fatalf("E164(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}

	if _, err := E164("n/a", "+506"); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestTwilioNotifier_Send(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeMessages{}
		n := &TwilioNotifier{api: fake, from: "+15005550006", countryCode: "+506"}

		id, err := n.Send(context.Background(), "8888-8888", "hello")
		if err != nil || id != "SM0001" {
			t.Fatalf("unexpected result %q %v", id, err)
		}
		if lo.FromPtr(fake.params.To) != "+50688888888" || lo.FromPtr(fake.params.From) != "+15005550006" || lo.FromPtr(fake.params.Body) != "hello" {
			t.Fatalf("unexpected params %+v", fake.params)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		n := &TwilioNotifier{api: &fakeMessages{err: errors.New("21211")}, from: "+1", countryCode: "+506"}

		_, err := n.Send(context.Background(), "8888-8888", "hello")
		if err == nil || !strings.Contains(err.Error(), "21211") {
			t.Fatalf("expected wrapped provider error, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n := &TwilioNotifier{api: &fakeMessages{}}

		if _, err := n.Send(ctx, "8888-8888", "hello"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestLogNotifier_Send(t *testing.T) {
	id, err := LogNotifier{}.Send(context.Background(), "8888-8888", "hello")
	if err != nil || !strings.HasPrefix(id, "log-") {
		t.Fatalf("unexpected result %q %v", id, err)
	}
}
