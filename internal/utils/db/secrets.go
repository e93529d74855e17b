package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go/aws"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// retrieveCredentials resolve usuário e senha do banco: variáveis de ambiente
// em desenvolvimento, Secrets Manager nos ambientes da AWS.
func retrieveCredentials(secretID string) (string, string, error) {
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	if username != "" && password != "" {
		return username, password, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", fmt.Errorf("configuração AWS: %w", err)
	}
	client := secretsmanager.NewFromConfig(cfg)

	result, err := client.GetSecretValue(context.TODO(), &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("secret %q: %w", secretID, err)
	}

	var creds credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &creds); err != nil {
		return "", "", fmt.Errorf("secret %q: payload inválido: %w", secretID, err)
	}
	return creds.Username, creds.Password, nil
}
