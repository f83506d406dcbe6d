// Package notify delivers membership-expiry reminders. Jobs go through a
// Redis list so a slow SMTP server never blocks a manager's request.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"gympro/internal/logger"
	"gympro/internal/metrics"
)

const (
	queueKey  = "reminders"
	failedKey = "reminders:failed"
	maxTries  = 3
)

type ReminderJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	GymID   string    `json:"gymId"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Queue(ctx context.Context, job ReminderJob) error {
	job.Tries = 0
	job.Created = time.Now()

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal reminder job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue reminder for %s: %v", job.To, err)
		return err
	}

	metrics.RemindersQueuedTotal.Inc()
	logger.Infof("Reminder queued: %s to %s", job.Subject, job.To)
	return nil
}

// QueueExpiryReminder builds the standard expiry notice for one member.
func (s *Service) QueueExpiryReminder(ctx context.Context, to, name, gymID, gymName string, expiry time.Time) error {
	subject := "Your " + gymName + " membership is expiring soon"
	body := fmt.Sprintf(`Hi %s,

Your membership at %s expires on %s.

Visit the front desk to extend your plan and keep training without a break.

- %s Team`, name, gymName, expiry.Format("Jan 2, 2006"), gymName)

	return s.Queue(ctx, ReminderJob{
		To:      to,
		Name:    name,
		GymID:   gymID,
		Subject: subject,
		Body:    body,
	})
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Reminder service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job ReminderJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad reminder data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending reminder to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send reminder to %s: %v", job.To, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying reminder to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Reminder to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordReminder("failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordReminder("sent")
	logger.Infof("Reminder sent successfully to %s", job.To)
}

func (s *Service) sendNow(job ReminderJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job ReminderJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, data)
	logger.Errorf("Reminder moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.ReminderQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}
