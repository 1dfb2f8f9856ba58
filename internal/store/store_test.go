package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"homecare-tracker/internal/config"
	"homecare-tracker/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return New(db)
}

var birthDay = time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

func createHealthWorker(t *testing.T, s *Store, email string) *models.Account {
	t.Helper()
	acc := &models.Account{Email: email, PasswordHash: "hash"}
	p := &models.HealthWorkerProfile{FirstName: "Hank", LastName: "Worker", Gender: "male", BirthDay: birthDay, PhoneNumber: "0612345678"}
	require.NoError(t, s.CreateHealthWorker(context.Background(), acc, p))
	return acc
}

func createClient(t *testing.T, s *Store, email string, hw *uint64) *models.Account {
	t.Helper()
	acc := &models.Account{Email: email, PasswordHash: "hash"}
	p := &models.ClientProfile{
		FirstName: "Alice", LastName: "Client", Gender: "female", BirthDay: birthDay,
		StreetName: "Main", HouseNumber: "1", Province: "Utrecht", District: "Centrum",
		HealthWorkerID: hw,
	}
	require.NoError(t, s.CreateClient(context.Background(), acc, p))
	return acc
}

func TestCreateClient_NormalizesAndRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	acc := createClient(t, s, "  Alice@Example.com ", nil)
	assert.Equal(t, "alice@example.com", acc.Email)
	assert.Equal(t, models.RoleClient, acc.Role)
	assert.Equal(t, int64(1), acc.Version)

	dup := &models.Account{Email: "ALICE@example.com", PasswordHash: "hash"}
	err := s.CreateClient(ctx, dup, &models.ClientProfile{FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	err = s.CreateAdmin(ctx, &models.Account{Email: "alice@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateClient_UnknownHealthWorker(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	missing := uint64(999)
	acc := &models.Account{Email: "bob@example.com", PasswordHash: "hash"}
	err := s.CreateClient(ctx, acc, &models.ClientProfile{FirstName: "Bob", LastName: "B", HealthWorkerID: &missing})
	assert.ErrorIs(t, err, ErrUnknownHealthWorker)

	// transaksi di-rollback: account tidak tersimpan
	_, err = s.FindAccountByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBench_CompareAndSwap(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	bench := models.Bench{Name: "Park", StreetName: "Lane", HouseNumber: "2", Province: "P", District: "D"}
	require.NoError(t, s.CreateBench(ctx, &bench))
	assert.Equal(t, int64(1), bench.Version)

	update := bench
	update.Name = "Park North"
	require.NoError(t, s.UpdateBench(ctx, &update))
	assert.Equal(t, int64(2), update.Version)

	// version lama -> conflict
	stale := bench
	stale.Name = "Park South"
	err := s.UpdateBench(ctx, &stale)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := s.GetBench(ctx, bench.ID)
	require.NoError(t, err)
	assert.Equal(t, "Park North", got.Name)
	assert.Equal(t, int64(2), got.Version)

	// version 0 = pakai version terbaru
	latest := *got
	latest.Version = 0
	latest.Name = "Park East"
	require.NoError(t, s.UpdateBench(ctx, &latest))
	assert.Equal(t, int64(3), latest.Version)

	missing := models.Bench{ID: 999, Name: "Nowhere", Version: 1}
	assert.ErrorIs(t, s.UpdateBench(ctx, &missing), ErrNotFound)
}

func TestCompareAndSwap_VanishedRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q := models.Question{Question: "How do you feel?"}
	require.NoError(t, s.CreateQuestion(ctx, &q))
	_, err := s.DeleteQuestion(ctx, q.ID)
	require.NoError(t, err)

	q.Question = "changed"
	_, err = compareAndSwap[models.Question](s.db, q.ID, 1, &q)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentView_DanglingReferenceIsIntegrityError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hw := createHealthWorker(t, s, "hank@example.com")
	client := createClient(t, s, "alice@example.com", nil)

	a := models.Appointment{Time: birthDay, ClientID: client.ID, HealthworkerID: hw.ID, BenchID: 999}
	require.NoError(t, s.CreateAppointment(ctx, &a))
	assert.Equal(t, models.DefaultAppointmentStatusID, a.StatusID)

	_, err := s.GetAppointmentView(ctx, a.ID)
	assert.ErrorIs(t, err, ErrIntegrity)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = s.ListAppointments(ctx, AppointmentFilter{})
	assert.ErrorIs(t, err, ErrIntegrity)

	_, err = s.GetAppointmentView(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAppointments_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hw := createHealthWorker(t, s, "hank@example.com")
	alice := createClient(t, s, "alice@example.com", nil)
	bob := createClient(t, s, "bob@example.com", nil)
	bench := models.Bench{Name: "Park"}
	require.NoError(t, s.CreateBench(ctx, &bench))

	for _, c := range []uint64{alice.ID, bob.ID, alice.ID} {
		a := models.Appointment{Time: birthDay, ClientID: c, HealthworkerID: hw.ID, BenchID: bench.ID}
		require.NoError(t, s.CreateAppointment(ctx, &a))
	}

	all, err := s.ListAppointments(ctx, AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	forAlice, err := s.ListAppointments(ctx, AppointmentFilter{ClientID: &alice.ID, HealthworkerID: &hw.ID})
	require.NoError(t, err)
	require.Len(t, forAlice, 2)
	assert.Equal(t, "alice@example.com", forAlice[0].Client.Email)
	assert.Equal(t, "pending", forAlice[0].Status.Name)
	assert.Equal(t, "Park", forAlice[0].Bench.Name)

	other := uint64(4242)
	none, err := s.ListAppointments(ctx, AppointmentFilter{HealthworkerID: &other})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestConnectedClients(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hw := createHealthWorker(t, s, "hank@example.com")
	createHealthWorker(t, s, "idle@example.com")
	createClient(t, s, "alice@example.com", &hw.ID)
	createClient(t, s, "bob@example.com", nil)

	clients, err := s.ConnectedClients(ctx, "hank@example.com")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "alice@example.com", clients[0].Email)

	clients, err = s.ConnectedClients(ctx, "idle@example.com")
	require.NoError(t, err)
	assert.Empty(t, clients)

	_, err = s.ConnectedClients(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	// email client, bukan healthworker
	_, err = s.ConnectedClients(ctx, "bob@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClient_ReplacesProfileAndEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hw := createHealthWorker(t, s, "hank@example.com")
	alice := createClient(t, s, "alice@example.com", nil)
	createClient(t, s, "bob@example.com", nil)

	in := models.UpdateClientInput{
		ID: alice.ID, Email: "alice.new@example.com", FirstName: "Alicia", LastName: "Client",
		Gender: "female", BirthDay: birthDay, StreetName: "Side", HouseNumber: "3",
		Province: "Utrecht", District: "Oost", HealthWorkerID: &hw.ID, Version: 1,
	}
	require.NoError(t, s.UpdateClient(ctx, in))

	got, err := s.GetClient(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice.new@example.com", got.Email)
	assert.Equal(t, "Alicia", got.FirstName)
	assert.Equal(t, int64(2), got.Version)
	require.NotNil(t, got.HealthWorkerID)
	assert.Equal(t, hw.ID, *got.HealthWorkerID)

	// stale version
	in.FirstName = "Ally"
	assert.ErrorIs(t, s.UpdateClient(ctx, in), ErrConflict)

	in.Version = 0
	in.Email = "bob@example.com"
	assert.ErrorIs(t, s.UpdateClient(ctx, in), ErrDuplicateEmail)

	in.ID = 999
	assert.ErrorIs(t, s.UpdateClient(ctx, in), ErrNotFound)
}

func TestEditClientAddressAndHealthWorkerLink(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hw := createHealthWorker(t, s, "hank@example.com")
	alice := createClient(t, s, "alice@example.com", nil)

	err := s.EditClientAddress(ctx, "alice@example.com", models.EditClientInput{
		StreetName: "New Street", HouseNumber: "10", Province: "Zeeland", District: "Noord",
	})
	require.NoError(t, err)

	missing := uint64(999)
	assert.ErrorIs(t, s.SetClientHealthWorker(ctx, "alice@example.com", &missing), ErrUnknownHealthWorker)
	require.NoError(t, s.SetClientHealthWorker(ctx, "alice@example.com", &hw.ID))

	got, err := s.GetClient(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Street", got.StreetName)
	assert.Equal(t, "Zeeland", got.Province)
	require.NotNil(t, got.HealthWorkerID)
	assert.Equal(t, hw.ID, *got.HealthWorkerID)

	require.NoError(t, s.SetClientHealthWorker(ctx, "alice@example.com", nil))
	got, err = s.GetClient(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, got.HealthWorkerID)

	assert.ErrorIs(t, s.EditClientAddress(ctx, "hank@example.com", models.EditClientInput{}), ErrNotFound)
	assert.ErrorIs(t, s.SetClientHealthWorker(ctx, "nobody@example.com", nil), ErrNotFound)
}

func TestDeleteHealthWorker_UnlinksClients(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hw := createHealthWorker(t, s, "hank@example.com")
	alice := createClient(t, s, "alice@example.com", &hw.ID)

	deleted, err := s.DeleteHealthWorker(ctx, hw.ID)
	require.NoError(t, err)
	assert.Equal(t, "hank@example.com", deleted.Email)

	got, err := s.GetClient(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, got.HealthWorkerID)

	_, err = s.GetHealthWorker(ctx, hw.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindAccountByEmail(ctx, "hank@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.DeleteHealthWorker(ctx, hw.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteClient_RemovesAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createClient(t, s, "alice@example.com", nil)

	deleted, err := s.DeleteClient(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", deleted.Email)

	_, err = s.GetClient(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetAccount(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountView(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hw := createHealthWorker(t, s, "hank@example.com")
	alice := createClient(t, s, "alice@example.com", nil)
	admin := &models.Account{Email: "root@example.com", PasswordHash: "hash"}
	require.NoError(t, s.CreateAdmin(ctx, admin))

	view, err := s.AccountView(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, view.Client)
	assert.Nil(t, view.HealthWorker)
	assert.Equal(t, "Alice", view.Client.FirstName)

	view, err = s.AccountView(ctx, hw)
	require.NoError(t, err)
	require.NotNil(t, view.HealthWorker)
	assert.Equal(t, "0612345678", view.HealthWorker.PhoneNumber)

	view, err = s.AccountView(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, view.Role)
	assert.Nil(t, view.Client)
	assert.Nil(t, view.HealthWorker)

	// profile hilang = data rusak
	require.NoError(t, s.db.Where("account_id = ?", alice.ID).Delete(&models.ClientProfile{}).Error)
	_, err = s.AccountView(ctx, alice)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestSetFCMToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createClient(t, s, "alice@example.com", nil)
	require.NoError(t, s.SetFCMToken(ctx, alice.ID, "device-1"))

	got, err := s.GetAccount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "device-1", got.FCMToken)

	require.NoError(t, s.SetFCMToken(ctx, alice.ID, ""))
	got, err = s.GetAccount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FCMToken)

	assert.ErrorIs(t, s.SetFCMToken(ctx, 999, "x"), ErrNotFound)
}

func TestQuestionnaireWithAnswers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createClient(t, s, "alice@example.com", nil)
	q1 := models.Question{Question: "Do you have pain?"}
	q2 := models.Question{Question: "Did you sleep well?"}
	require.NoError(t, s.CreateQuestion(ctx, &q1))
	require.NoError(t, s.CreateQuestion(ctx, &q2))

	qn := models.Questionnaire{Time: birthDay, ClientID: alice.ID, Redflag: true}
	require.NoError(t, s.CreateQuestionnaire(ctx, &qn))

	require.NoError(t, s.CreateAnswers(ctx, []models.Answer{
		{QuestionnaireID: qn.ID, QuestionID: q1.ID, Answer: "no"},
		{QuestionnaireID: qn.ID, QuestionID: q2.ID, Answer: "yes"},
	}))

	view, err := s.GetQuestionnaireWithAnswers(ctx, qn.ID)
	require.NoError(t, err)
	assert.True(t, view.Redflag)
	assert.Equal(t, "alice@example.com", view.Client.Email)
	assert.Equal(t, []models.AnswerView{
		{QuestionID: q1.ID, Question: "Do you have pain?", Answer: "no"},
		{QuestionID: q2.ID, Question: "Did you sleep well?", Answer: "yes"},
	}, view.Answers)

	byClient, err := s.ListQuestionnaires(ctx, &alice.ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 1)

	// pertanyaan dihapus -> jawaban menggantung
	_, err = s.DeleteQuestion(ctx, q2.ID)
	require.NoError(t, err)
	_, err = s.GetQuestionnaireWithAnswers(ctx, qn.ID)
	assert.ErrorIs(t, err, ErrIntegrity)

	// hapus questionnaire ikut hapus jawaban
	_, err = s.DeleteQuestionnaire(ctx, qn.ID)
	require.NoError(t, err)
	answers, err := s.ListAnswers(ctx, &qn.ID)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestCreateAnswers_AllOrNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// id yang sama dua kali -> insert kedua gagal, tidak ada yang tersimpan
	err := s.CreateAnswers(ctx, []models.Answer{
		{ID: 5, QuestionnaireID: 1, QuestionID: 1, Answer: "a"},
		{ID: 5, QuestionnaireID: 1, QuestionID: 2, Answer: "b"},
	})
	assert.Error(t, err)

	answers, err := s.ListAnswers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, answers)
}
