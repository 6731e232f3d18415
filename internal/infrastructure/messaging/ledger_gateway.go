package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bibbank/message-adapter/internal/domain/port"
	"github.com/bibbank/message-adapter/internal/infrastructure/kafka"
)

// TopicCreditTransferCommands carries commands for the settlement layer.
const TopicCreditTransferCommands = "bib.ledger.credit-transfer.commands"

var _ port.LedgerGateway = (*KafkaLedgerGateway)(nil)

// KafkaLedgerGateway hands accepted instructions to the settlement layer by
// publishing credit transfer commands. The ledger service consumes the topic
// and owns execution; this gateway only guarantees delivery to the broker.
type KafkaLedgerGateway struct {
	producer producer
	topic    string
}

func NewKafkaLedgerGateway(p producer) *KafkaLedgerGateway {
	return &KafkaLedgerGateway{producer: p, topic: TopicCreditTransferCommands}
}

func (g *KafkaLedgerGateway) SubmitCreditTransfer(ctx context.Context, cmd port.CreditTransferCommand) error {
	payload, err := json.Marshal(struct {
		FromAccount string `json:"from_account"`
		ToAccount   string `json:"to_account"`
		Amount      string `json:"amount"`
		Currency    string `json:"currency"`
		Reference   string `json:"reference"`
		Memo        string `json:"memo"`
		Provenance  string `json:"provenance"`
	}{
		FromAccount: cmd.FromAccount,
		ToAccount:   cmd.ToAccount,
		Amount:      cmd.Amount.String(),
		Currency:    cmd.Currency,
		Reference:   cmd.Reference,
		Memo:        cmd.Memo,
		Provenance:  cmd.Provenance,
	})
	if err != nil {
		return fmt.Errorf("marshal credit transfer command: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(cmd.Reference),
		Value: payload,
		Headers: map[string]string{
			"command_type": "credit_transfer",
			"provenance":   cmd.Provenance,
		},
	}
	if err := g.producer.Publish(ctx, g.topic, msg); err != nil {
		return fmt.Errorf("submit credit transfer: %w", err)
	}
	return nil
}
