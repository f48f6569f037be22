package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/note-widget/business/v1/note"
	"github.com/ribgsilva/note-widget/business/v1/widget"
	"github.com/ribgsilva/note-widget/sys"
	"gocloud.dev/pubsub"
	"sync"
)

// Consume submits every "create" event of the subscription to the widget.
// It returns when ctx is cancelled or the subscription fails, after the running
// messages are done.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int, w *widget.Widget) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		wg.Add(1)
		go func(m *pubsub.Message) {
			defer wg.Done()
			defer func() { <-workers }()
			defer m.Ack()

			handle(m.Body, w)
		}(message)
	}

	wg.Wait()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func handle(body []byte, w *widget.Widget) {
	logger := sys.R.Log

	logger.Infof("message received: %s", string(body))
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		logger.Error("failed to parse body: ", err)
		return
	}

	switch e.Type {
	case "create":
		var v note.Values
		if err := json.Unmarshal(e.Data, &v); err != nil {
			logger.Errorf("failed to parse create event %s: %s", string(e.Data), err)
			return
		}

		form := widget.NewSubmission(v)
		if _, err := w.Submit(form); err != nil {
			logger.Errorw("create event rejected", "alert", form.Message, "ERROR", err)
		}
	default:
		logger.Error("unknown event type: ", e.Type)
	}
}
