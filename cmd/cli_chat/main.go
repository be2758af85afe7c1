package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/nlp"
	"civic-feedback/internal/service"
	"civic-feedback/internal/translate"
)

// stdoutRepository imprime el registro final como JSON en lugar de persistirlo.
type stdoutRepository struct{}

func (stdoutRepository) SaveDistrict(_ context.Context, record domain.DistrictFeedback) error {
	return printRecord("district feedback", record)
}

func (stdoutRepository) SaveJustice(_ context.Context, record domain.JusticeFeedback) error {
	return printRecord("justice feedback", record)
}

func (stdoutRepository) ListDistrict(_ context.Context) ([]domain.DistrictFeedback, error) {
	return nil, nil
}

func (stdoutRepository) ListJustice(_ context.Context) ([]domain.JusticeFeedback, error) {
	return nil, nil
}

func printRecord(label string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("\n===== %s =====\n%s\n", label, data)
	return nil
}

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	logger := zap.NewExample()
	defer logger.Sync()

	scorer := service.NewScorer(nlp.NewLexiconOracle(), logger)
	selector := service.NewCategorySelector()
	flow := service.NewJusticeFlowService(
		scorer,
		selector,
		translate.NewNoopTranslator(),
		stdoutRepository{},
		service.NewMemoryFinalizeGuard(0),
		logger,
	)

	fmt.Print("District: ")
	district, _ := reader.ReadString('\n')
	district = strings.TrimSpace(district)
	if district == "" {
		district = "Demo District"
	}

	res := flow.Start(ctx, district)
	fmt.Println(res.Message)
	fmt.Printf("bot> %s\n", res.Question)

	session := res.Session
	category := res.Category

	for {
		fmt.Print("you> ")
		answer, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nbye")
			return
		}
		answer = strings.TrimSpace(answer)
		if answer == "/exit" {
			fmt.Println("bye")
			return
		}

		result, err := flow.Turn(ctx, service.TurnInput{
			Session:  session,
			Answer:   answer,
			Category: category,
		})
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		if result.BotReply != "" {
			fmt.Printf("bot> %s\n", result.BotReply)
		}
		if result.Done {
			fmt.Println(result.Message)
			for _, ref := range result.References {
				fmt.Printf("  %s: %s\n", ref.Title, ref.Link)
			}
			return
		}

		fmt.Printf("bot> %s\n", result.Question)
		session = result.Session
		category = result.Category
	}
}
