package api

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
	"github.com/adoptme/adoptme-api/internal/service/auth"
	"github.com/adoptme/adoptme-api/internal/store"
)

// Mock-data volumes and the fixed plaintext every mock user is created with.
const (
	mockPetCount     = 100
	mockUserCount    = 50
	mockUserPassword = "coder123"
)

var (
	mockPetNames = []string{
		"Luna", "Rocky", "Milo", "Nala", "Simba", "Coco", "Toby", "Kira",
		"Max", "Lola", "Bruno", "Mia", "Zeus", "Canela", "Firulais", "Pelusa",
	}
	mockSpecies  = []domain.Species{domain.SpeciesPerro, domain.SpeciesGato, domain.SpeciesConejo, domain.SpeciesOtro}
	mockBreeds   = []string{"Mestizo", "Labrador", "Siamés", "Pastor Alemán", "Persa", "Beagle", "Angora"}
	mockGenders  = []domain.Gender{domain.GenderMacho, domain.GenderHembra, domain.GenderDesconocido}
	mockSizes    = []domain.Size{domain.SizePequeno, domain.SizeMediano, domain.SizeGrande}
	mockStatuses = []domain.PetStatus{domain.StatusDisponible, domain.StatusDisponible, domain.StatusReservado}

	mockFirstNames = []string{
		"Ana", "Luis", "María", "Carlos", "Lucía", "Jorge", "Elena", "Pedro",
		"Sofía", "Diego", "Valentina", "Andrés", "Camila", "Martín",
	}
	mockLastNames = []string{
		"García", "Rodríguez", "Martínez", "López", "Pérez", "Sánchez",
		"Ramírez", "Torres", "Flores", "Díaz",
	}
	mockCities = []string{"Buenos Aires", "Córdoba", "Rosario", "Mendoza", "La Plata"}
)

// MockHandler serves the development-only mock-data generation routes. The
// routes write straight to the stores, bypassing the services, so generated
// documents look exactly like organically created ones.
type MockHandler struct {
	users        store.UserStore
	pets         store.PetStore
	hasher       auth.PasswordHasher
	rng          *rand.Rand
	detailErrors bool
}

// NewMockHandler creates a new MockHandler with the given dependencies.
func NewMockHandler(users store.UserStore, pets store.PetStore, hasher auth.PasswordHasher, detailErrors bool) *MockHandler {
	return &MockHandler{
		users:        users,
		pets:         pets,
		hasher:       hasher,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		detailErrors: detailErrors,
	}
}

// MockingPets handles GET /api/mocks/mockingpets. It inserts a batch of
// randomly generated pets.
func (h *MockHandler) MockingPets(w http.ResponseWriter, r *http.Request) {
	inserted := 0
	for i := 0; i < mockPetCount; i++ {
		now := time.Now().UTC()
		pet := &domain.Pet{
			Name:        h.pick(mockPetNames),
			Species:     mockSpecies[h.rng.Intn(len(mockSpecies))],
			Breed:       h.pick(mockBreeds),
			Age:         h.rng.Intn(15),
			Gender:      mockGenders[h.rng.Intn(len(mockGenders))],
			Size:        mockSizes[h.rng.Intn(len(mockSizes))],
			Description: "Generated mock pet",
			Status:      mockStatuses[h.rng.Intn(len(mockStatuses))],
			Location: &domain.Location{
				City:  h.pick(mockCities),
				State: "Argentina",
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := h.pets.Create(r.Context(), pet); err != nil {
			HandleServiceError(w, r, err, h.detailErrors)
			return
		}
		inserted++
	}

	logger.FromContext(r.Context()).Info("mock pets generated", "count", inserted)
	shared.RespondWithJSON(w, r, http.StatusCreated, MockDataResponse{
		Status:  "success",
		Message: "Mock pets generated",
		Count:   inserted,
	})
}

// MockingUsers handles GET /api/mocks/mockingusers. Every generated user
// shares the same known plaintext, hashed once and reused, so the batch can
// be logged into during manual testing.
func (h *MockHandler) MockingUsers(w http.ResponseWriter, r *http.Request) {
	hashed, err := h.hasher.Hash(mockUserPassword)
	if err != nil {
		HandleServiceError(w, r, fmt.Errorf("failed to hash mock password: %w", err), h.detailErrors)
		return
	}

	inserted := 0
	for i := 0; i < mockUserCount; i++ {
		first := h.pick(mockFirstNames)
		last := h.pick(mockLastNames)
		// Names carry accents, so emails are built from counters instead.
		email := fmt.Sprintf("mock.user.%d.%d@example.com", i, h.rng.Intn(1_000_000))

		user, err := domain.NewUser(first, last, email, hashed)
		if err != nil {
			HandleServiceError(w, r, err, h.detailErrors)
			return
		}
		if err := h.users.Create(r.Context(), user); err != nil {
			// Random emails can collide with earlier batches; skip and move on.
			if store.IsDuplicateError(err) {
				continue
			}
			HandleServiceError(w, r, err, h.detailErrors)
			return
		}
		inserted++
	}

	logger.FromContext(r.Context()).Info("mock users generated", "count", inserted)
	shared.RespondWithJSON(w, r, http.StatusCreated, MockDataResponse{
		Status:  "success",
		Message: "Mock users generated",
		Count:   inserted,
	})
}

func (h *MockHandler) pick(values []string) string {
	return values[h.rng.Intn(len(values))]
}
