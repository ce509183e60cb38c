package persistence

import (
	"sync"

	convEntity "MedLink/internal/modules/conversation/domain/entity"
	convRepository "MedLink/internal/modules/conversation/domain/repository"
	"MedLink/pkg/xerr"
)

type patientRepositoryImpl struct {
	mu       sync.RWMutex
	patients map[string]*convEntity.Patient
}

func NewPatientRepository() convRepository.PatientRepository {
	return &patientRepositoryImpl{
		patients: make(map[string]*convEntity.Patient),
	}
}

func (r *patientRepositoryImpl) Create(patient *convEntity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.patients[patient.Uuid]; exists {
		return xerr.New(xerr.BadRequest, "paciente já cadastrado")
	}
	r.patients[patient.Uuid] = patient
	return nil
}

func (r *patientRepositoryImpl) GetByUuid(uuid string) (*convEntity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[uuid]
	if !ok {
		return nil, xerr.New(xerr.NotFound, "paciente não encontrado")
	}
	return p, nil
}

func (r *patientRepositoryImpl) List() ([]*convEntity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*convEntity.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out, nil
}
