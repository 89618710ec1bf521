// Package seeds populates a fresh database with representative fixture
// rows for manual testing. It is a one-shot tool: inserts run in
// dependency order (profile, category, assets), the first error aborts the
// run, and a rerun fails on the unique slug constraints.
package seeds

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/buildermart/marketplace-backend/internal/models"
)

// TestBuilderID is the fixed identity of the seeded builder profile, so
// follow-up manual tests can reference it without a lookup.
var TestBuilderID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func Run(db *gorm.DB) error {
	logrus.Info("Starting database seed...")

	logrus.Info("Creating test builder profile...")
	builder := testBuilderProfile()
	if err := db.Create(&builder).Error; err != nil {
		return fmt.Errorf("failed to create builder profile: %w", err)
	}
	logrus.Infof("Test builder created: %s", builder.DisplayName)

	logrus.Info("Creating categories...")
	category := aiAgentsCategory()
	if err := db.Create(&category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	logrus.Infof("Category created: %s", category.Name)

	logrus.Info("Creating test assets...")
	assets := sampleAssets(builder.ID, category.ID)
	if err := db.Create(&assets).Error; err != nil {
		return fmt.Errorf("failed to create assets: %w", err)
	}
	logrus.Infof("Created %d test assets", len(assets))

	logrus.Info("Seed completed successfully")
	logrus.Infof("Summary: 1 test builder profile, 1 category (%s), %d active assets",
		category.Name, len(assets))
	return nil
}

func testBuilderProfile() models.Profile {
	return models.Profile{
		ID:          TestBuilderID,
		Role:        models.ProfileRoleBuilder,
		DisplayName: "Test Builder",
		CompanyName: "AI Innovations Pvt Ltd",
		City:        "Bangalore",
		IsVerified:  true,
	}
}

func aiAgentsCategory() models.Category {
	return models.Category{
		Name:        "AI Agents",
		Slug:        "ai-agents",
		Description: "Autonomous AI agents for various business tasks",
		Icon:        "🤖",
		SortOrder:   1,
	}
}

func sampleAssets(builderID, categoryID uuid.UUID) []models.Asset {
	return []models.Asset{
		{
			BuilderID: builderID,
			Name:      "Lead Scoring AI Agent",
			Slug:      "lead-scoring-ai-agent",
			Tagline:   "Automatically score and prioritize sales leads using AI",
			Description: `# Lead Scoring AI Agent

An intelligent system that automatically analyzes and scores your sales leads based on multiple factors including:

- Company size and industry
- Engagement history
- Budget indicators
- Decision-maker identification

## Features

- **Real-time Scoring**: Instant lead evaluation as they enter your system
- **Custom Models**: Train on your historical conversion data
- **Integration Ready**: Works with popular CRMs
- **Explainable AI**: Understand why each lead received its score

## Tech Stack

Built with Python, OpenAI GPT-4, and FastAPI for high-performance lead processing.`,
			CategoryID:              categoryID,
			TechStack:               pq.StringArray{"Python", "OpenAI GPT-4", "FastAPI", "PostgreSQL"},
			DeploymentType:          models.DeploymentTypeDownload,
			PriceUsage:              num(25000),
			PriceSource:             num(75000),
			Status:                  models.AssetStatusActive,
			QualityTier:             models.QualityTierSilver,
			ScarcityUsageRemaining:  47,
			ScarcitySourceRemaining: 3,
		},
		{
			BuilderID: builderID,
			Name:      "Customer Support Chatbot",
			Slug:      "customer-support-chatbot",
			Tagline:   "24/7 AI-powered customer support automation",
			Description: `# Customer Support Chatbot

Reduce support costs by 60% with an AI chatbot that handles common customer queries automatically.

## Capabilities

- **Multi-language Support**: Supports 10+ languages
- **Context Awareness**: Remembers conversation history
- **Seamless Handoff**: Transfers to human agents when needed
- **Knowledge Base Integration**: Learns from your documentation

## Use Cases

- Product troubleshooting
- Order status inquiries
- FAQ automation
- Appointment scheduling

## Deployment

Hosted solution with easy embed code. No infrastructure needed.`,
			CategoryID:              categoryID,
			TechStack:               pq.StringArray{"Next.js", "OpenAI", "Vercel", "Supabase"},
			DeploymentType:          models.DeploymentTypeHosted,
			DemoURL:                 "https://demo.example.com/chatbot",
			PriceUsage:              num(30000),
			PriceSource:             num(90000),
			Status:                  models.AssetStatusActive,
			QualityTier:             models.QualityTierGold,
			ScarcityUsageRemaining:  82,
			ScarcitySourceRemaining: 5,
			AvgRating:               decimal.RequireFromString("4.5"),
			ReviewCount:             3,
		},
		{
			BuilderID: builderID,
			Name:      "Content Generation Engine",
			Slug:      "content-generation-engine",
			Tagline:   "Generate SEO-optimized blog posts and social media content",
			Description: `# Content Generation Engine

Create high-quality, SEO-optimized content at scale for your marketing needs.

## What It Does

- Blog post generation (1000-2000 words)
- Social media content (LinkedIn, Twitter, Instagram)
- Product descriptions
- Email newsletters

## Features

- **SEO Optimization**: Built-in keyword research and optimization
- **Brand Voice**: Maintains your unique tone and style
- **Fact-Checking**: Verifies claims against reliable sources
- **Multi-format**: Outputs in Markdown, HTML, or plain text

Perfect for agencies managing multiple clients.`,
			CategoryID:              categoryID,
			TechStack:               pq.StringArray{"Python", "Claude API", "Django", "Redis"},
			DeploymentType:          models.DeploymentTypeHybrid,
			PriceUsage:              num(20000),
			PriceSource:             num(60000),
			Status:                  models.AssetStatusActive,
			QualityTier:             models.QualityTierBronze,
			ScarcityUsageRemaining:  95,
			ScarcitySourceRemaining: 4,
		},
	}
}

func num(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}
