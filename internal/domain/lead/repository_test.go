package lead

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"salescrm/internal/domain/account"
	"salescrm/internal/domain/contact"
	"salescrm/internal/domain/deal"
	"salescrm/internal/domain/pipeline"
)

func testRepo(t *testing.T) *Repository {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&pipeline.Stage{}, &account.Account{}, &contact.Contact{}, &Lead{}, &deal.Deal{},
	))
	return NewRepository(db)
}

func TestApplyConversion_CreatesAccountContactAndDeal(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	stage := &pipeline.Stage{Name: "Qualification", SortOrder: 1, IsActive: true}
	require.NoError(t, repo.db.Create(stage).Error)

	l := &Lead{
		FirstName:   "Dewi",
		LastName:    "Lestari",
		Email:       "dewi@tirta.example",
		Phone:       "+62 812 0000 0001",
		CompanyName: "Tirta Abadi",
		Status:      StatusQualified,
	}
	require.NoError(t, repo.Create(ctx, l))

	result, err := repo.ApplyConversion(ctx, l, &ConversionPayload{
		OpportunityTitle: "Tirta Abadi - Opportunity",
		StageID:          stage.ID,
		Value:            2500000,
		Probability:      60,
		CreateAccount:    true,
		CreateContact:    true,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Account)
	assert.Equal(t, "Tirta Abadi", result.Account.Name)
	assert.Equal(t, account.StatusActive, result.Account.Status)

	require.NotNil(t, result.Contact)
	assert.Equal(t, result.Account.ID, result.Contact.AccountID)
	assert.Equal(t, "dewi@tirta.example", result.Contact.Email)

	require.NotNil(t, result.Deal)
	assert.Equal(t, deal.StatusOpen, result.Deal.Status)
	assert.Equal(t, int64(2500000), result.Deal.Value)
	require.NotNil(t, result.Deal.ContactID)
	assert.Equal(t, result.Contact.ID, *result.Deal.ContactID)

	stored, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConverted, stored.Status)
	require.NotNil(t, stored.AccountID)
	assert.Equal(t, result.Account.ID, *stored.AccountID)
	require.NotNil(t, stored.OpportunityID)
	assert.Equal(t, result.Deal.ID, *stored.OpportunityID)
	assert.NotNil(t, stored.ConvertedAt)
}

func TestApplyConversion_StaleSnapshotConvertsOnce(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	stage := &pipeline.Stage{Name: "Qualification", SortOrder: 1, IsActive: true}
	require.NoError(t, repo.db.Create(stage).Error)

	l := &Lead{FirstName: "Dewi", Email: "dewi@tirta.example", CompanyName: "Tirta Abadi", Status: StatusQualified}
	require.NoError(t, repo.Create(ctx, l))

	first, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)

	payload := &ConversionPayload{
		OpportunityTitle: "Tirta Abadi - Opportunity",
		StageID:          stage.ID,
		Value:            2500000,
		CreateAccount:    true,
	}

	result, err := repo.ApplyConversion(ctx, first, payload)
	require.NoError(t, err)

	_, err = repo.ApplyConversion(ctx, second, payload)
	assert.ErrorIs(t, err, ErrLeadConverted)

	var dealCount int64
	require.NoError(t, repo.db.Model(&deal.Deal{}).Count(&dealCount).Error)
	assert.Equal(t, int64(1), dealCount)

	stored, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConverted, stored.Status)
	require.NotNil(t, stored.OpportunityID)
	assert.Equal(t, result.Deal.ID, *stored.OpportunityID)
}

func TestApplyConversion_LinksExistingAccountAndContact(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	stage := &pipeline.Stage{Name: "Proposal", SortOrder: 3, IsActive: true}
	require.NoError(t, repo.db.Create(stage).Error)
	acc := &account.Account{Name: "Acme Manufacturing", Status: account.StatusActive}
	require.NoError(t, repo.db.Create(acc).Error)
	ct := &contact.Contact{AccountID: acc.ID, FirstName: "Rina"}
	require.NoError(t, repo.db.Create(ct).Error)

	l := &Lead{FirstName: "Budi", Email: "budi@acme.example", CompanyName: "Acme", Status: StatusQualified}
	require.NoError(t, repo.Create(ctx, l))

	result, err := repo.ApplyConversion(ctx, l, &ConversionPayload{
		OpportunityTitle: "Acme - Opportunity",
		StageID:          stage.ID,
		Value:            5000000,
		Probability:      40,
		AccountID:        acc.ID,
		ContactID:        ct.ID,
	})
	require.NoError(t, err)

	assert.Nil(t, result.Account)
	assert.Nil(t, result.Contact)
	assert.Equal(t, acc.ID, result.Deal.AccountID)
	require.NotNil(t, result.Deal.ContactID)
	assert.Equal(t, ct.ID, *result.Deal.ContactID)

	stored, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AccountID)
	assert.Equal(t, acc.ID, *stored.AccountID)
}
