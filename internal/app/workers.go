package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/dealerdesk/dealerdesk_backend/config"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/delivery"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/notification"
)

// WorkerModule registers all NATS event workers and the expiry sweeper.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	NC          *nats.Conn
	NotifSvc    notification.Service
	DeliverySvc delivery.Service
}

func RegisterWorkers(p WorkerParams) {
	sweeperDone := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startLeadWorker(p.NC, p.NotifSvc, p.DeliverySvc)
			startAppointmentWorker(p.NC, p.NotifSvc, p.DeliverySvc)
			startCommunicationWorker(p.NC, p.NotifSvc, p.DeliverySvc)
			startVehicleWorker(p.NC, p.NotifSvc, p.DeliverySvc)
			startExpirySweeper(p.Cfg, p.NotifSvc, sweeperDone)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(sweeperDone)
			// NATS drain handled by ProvideNatsClient
			return nil
		},
	})
}

// assignee is the BDC rep an event routes to. The main app embeds contact
// info in the event so this service needs no user directory.
type assignee struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
}

func (a assignee) recipient() delivery.Recipient {
	return delivery.Recipient{UserID: a.UserID, Email: a.Email, Phone: a.Phone}
}

func createAndDeliver(
	ctx context.Context,
	notifSvc notification.Service,
	deliverySvc delivery.Service,
	req notification.CreateRequest,
	rcpt delivery.Recipient,
	worker string,
) {
	n, err := notifSvc.Create(ctx, req)
	if err != nil {
		slog.Warn(worker+": create notification failed", "err", err)
		return
	}
	if err := deliverySvc.Deliver(ctx, n, rcpt); err != nil {
		slog.Warn(worker+": delivery incomplete", "notification_id", n.ID, "err", err)
	}
}

func strptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// lead_worker
// ---------------------------------------------------------------------------

func startLeadWorker(nc *nats.Conn, notifSvc notification.Service, deliverySvc delivery.Service) {
	_, err := nc.Subscribe("dealerdesk.lead.created", func(msg *nats.Msg) {
		var ev struct {
			LeadID       string   `json:"lead_id"`
			CustomerName string   `json:"customer_name"`
			Source       string   `json:"source"`
			AssignedTo   assignee `json:"assigned_to"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("lead_worker: bad event payload", "err", err)
			return
		}
		if ev.AssignedTo.UserID == uuid.Nil || ev.LeadID == "" {
			return
		}

		body := ev.CustomerName
		if ev.Source != "" {
			body = fmt.Sprintf("%s (via %s)", ev.CustomerName, ev.Source)
		}

		createAndDeliver(context.Background(), notifSvc, deliverySvc, notification.CreateRequest{
			UserID:   ev.AssignedTo.UserID,
			Type:     notify.TypeLead,
			Priority: notify.PriorityHigh,
			Title:    "New lead assigned",
			Body:     strptr(body),
			Link:     strptr("/leads/" + ev.LeadID),
			EntityID: strptr(ev.LeadID),
			Data:     map[string]any{"source": ev.Source},
		}, ev.AssignedTo.recipient(), "lead_worker")
	})
	if err != nil {
		slog.Error("lead_worker: subscribe lead.created failed", "err", err)
	}

	slog.Info("lead_worker: started")
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

func startAppointmentWorker(nc *nats.Conn, notifSvc notification.Service, deliverySvc delivery.Service) {
	_, err := nc.Subscribe("dealerdesk.appointment.reminder", func(msg *nats.Msg) {
		var ev struct {
			AppointmentID string    `json:"appointment_id"`
			CustomerName  string    `json:"customer_name"`
			ScheduledAt   time.Time `json:"scheduled_at"`
			AssignedTo    assignee  `json:"assigned_to"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("appointment_worker: bad event payload", "err", err)
			return
		}
		if ev.AssignedTo.UserID == uuid.Nil || ev.AppointmentID == "" {
			return
		}

		body := ev.CustomerName
		if !ev.ScheduledAt.IsZero() {
			body = fmt.Sprintf("%s at %s", ev.CustomerName, ev.ScheduledAt.Format("3:04 PM"))
		}

		// A reminder is only useful until the slot passes.
		var expires *time.Time
		if ev.ScheduledAt.After(time.Now()) {
			expires = &ev.ScheduledAt
		}

		createAndDeliver(context.Background(), notifSvc, deliverySvc, notification.CreateRequest{
			UserID:    ev.AssignedTo.UserID,
			Type:      notify.TypeAppointment,
			Priority:  notify.PriorityUrgent,
			Title:     "Upcoming appointment",
			Body:      strptr(body),
			Link:      strptr("/appointments/" + ev.AppointmentID),
			EntityID:  strptr(ev.AppointmentID),
			ExpiresAt: expires,
		}, ev.AssignedTo.recipient(), "appointment_worker")
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe appointment.reminder failed", "err", err)
	}

	slog.Info("appointment_worker: started")
}

// ---------------------------------------------------------------------------
// communication_worker
// ---------------------------------------------------------------------------

func startCommunicationWorker(nc *nats.Conn, notifSvc notification.Service, deliverySvc delivery.Service) {
	_, err := nc.Subscribe("dealerdesk.communication.received", func(msg *nats.Msg) {
		var ev struct {
			CommunicationID string   `json:"communication_id"`
			Channel         string   `json:"channel"` // sms, email, chat
			CustomerName    string   `json:"customer_name"`
			Preview         string   `json:"preview"`
			AssignedTo      assignee `json:"assigned_to"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("communication_worker: bad event payload", "err", err)
			return
		}
		if ev.AssignedTo.UserID == uuid.Nil || ev.CommunicationID == "" {
			return
		}

		title := "New message"
		if ev.CustomerName != "" {
			title = "New message from " + ev.CustomerName
		}

		createAndDeliver(context.Background(), notifSvc, deliverySvc, notification.CreateRequest{
			UserID:   ev.AssignedTo.UserID,
			Type:     notify.TypeCommunication,
			Priority: notify.PriorityNormal,
			Title:    title,
			Body:     strptr(ev.Preview),
			Link:     strptr("/communications/" + ev.CommunicationID),
			EntityID: strptr(ev.CommunicationID),
			Data:     map[string]any{"channel": ev.Channel},
		}, ev.AssignedTo.recipient(), "communication_worker")
	})
	if err != nil {
		slog.Error("communication_worker: subscribe communication.received failed", "err", err)
	}

	slog.Info("communication_worker: started")
}

// ---------------------------------------------------------------------------
// vehicle_worker
// ---------------------------------------------------------------------------

func startVehicleWorker(nc *nats.Conn, notifSvc notification.Service, deliverySvc delivery.Service) {
	_, err := nc.Subscribe("dealerdesk.vehicle.matched", func(msg *nats.Msg) {
		var ev struct {
			VehicleID    string   `json:"vehicle_id"`
			LeadID       string   `json:"lead_id"`
			Description  string   `json:"description"` // e.g. "2022 Honda CR-V EX"
			CustomerName string   `json:"customer_name"`
			AssignedTo   assignee `json:"assigned_to"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("vehicle_worker: bad event payload", "err", err)
			return
		}
		if ev.AssignedTo.UserID == uuid.Nil || ev.VehicleID == "" {
			return
		}

		body := ev.Description
		if ev.CustomerName != "" {
			body = fmt.Sprintf("%s matches %s's request", ev.Description, ev.CustomerName)
		}

		createAndDeliver(context.Background(), notifSvc, deliverySvc, notification.CreateRequest{
			UserID:   ev.AssignedTo.UserID,
			Type:     notify.TypeVehicle,
			Priority: notify.PriorityNormal,
			Title:    "Inventory match found",
			Body:     strptr(body),
			Link:     strptr("/vehicles/" + ev.VehicleID),
			EntityID: strptr(ev.VehicleID),
			Data:     map[string]any{"lead_id": ev.LeadID},
		}, ev.AssignedTo.recipient(), "vehicle_worker")
	})
	if err != nil {
		slog.Error("vehicle_worker: subscribe vehicle.matched failed", "err", err)
	}

	slog.Info("vehicle_worker: started")
}

// ---------------------------------------------------------------------------
// expiry sweeper
// ---------------------------------------------------------------------------

func startExpirySweeper(cfg *config.Config, notifSvc notification.Service, done <-chan struct{}) {
	interval := time.Duration(cfg.Notify.SweepIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := notifSvc.PurgeExpired(context.Background())
				if err != nil {
					slog.Warn("expiry_sweeper: purge failed", "err", err)
					continue
				}
				if n > 0 {
					slog.Info("expiry_sweeper: purged expired notifications", "count", n)
				}
			case <-done:
				return
			}
		}
	}()

	slog.Info("expiry_sweeper: started", "interval", interval)
}
