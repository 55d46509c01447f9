// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	"estagiohub/internal/infra/persistence/model"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindUserByID retrieves a core user account by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a core user account by e-mail.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// UpdateUserPassword replaces the stored password hash of a user.
func (repo *userRepository) UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CreateStudent persists a new student profile together with its user account.
// GORM's Create with associations inserts both rows in one statement batch.
func (repo *userRepository) CreateStudent(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.ID = studentM.ID
	student.User.ID = studentM.User.ID
	student.User.CreatedAt = studentM.User.CreatedAt
	student.User.UpdatedAt = studentM.User.UpdatedAt

	return nil
}

// CreateSupervisor persists a new supervisor profile together with its user account.
func (repo *userRepository) CreateSupervisor(ctx context.Context, supervisor *entity.Supervisor) error {
	supervisorM := fromSupervisorDomain(supervisor)

	if err := repo.db.WithContext(ctx).Create(supervisorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required supervisor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supervisor")
	}

	supervisor.ID = supervisorM.ID
	supervisor.User.ID = supervisorM.User.ID
	supervisor.User.CreatedAt = supervisorM.User.CreatedAt
	supervisor.User.UpdatedAt = supervisorM.User.UpdatedAt

	return nil
}

// CreateAdmin persists a new admin profile together with its user account.
func (repo *userRepository) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required admin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.User.ID = adminM.User.ID
	admin.User.CreatedAt = adminM.User.CreatedAt
	admin.User.UpdatedAt = adminM.User.UpdatedAt

	return nil
}

// FindStudentByID retrieves a student profile by its profile ID.
func (repo *userRepository) FindStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		First(&studentM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by id")
	}

	return toStudentDomain(&studentM), nil
}

// FindStudentByUserID retrieves the student profile owned by a user account.
func (repo *userRepository) FindStudentByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		First(&studentM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by user id")
	}

	return toStudentDomain(&studentM), nil
}

// FindStudentByEmail retrieves a student profile by the account e-mail.
func (repo *userRepository) FindStudentByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Joins("User").
		Where(`"User".email = ?`, email).
		First(&studentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	return toStudentDomain(&studentM), nil
}

// FindSupervisorByID retrieves a supervisor profile by its profile ID.
func (repo *userRepository) FindSupervisorByID(ctx context.Context, id uuid.UUID) (*entity.Supervisor, error) {
	var supervisorM model.SupervisorModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		First(&supervisorM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupervisorNotFound
		}

		return nil, errors.Wrap(err, "failed to find supervisor by id")
	}

	return toSupervisorDomain(&supervisorM), nil
}

// FindSupervisorByEmail retrieves a supervisor profile by the account e-mail.
func (repo *userRepository) FindSupervisorByEmail(ctx context.Context, email string) (*entity.Supervisor, error) {
	var supervisorM model.SupervisorModel
	err := repo.db.WithContext(ctx).
		Joins("User").
		Where(`"User".email = ?`, email).
		First(&supervisorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupervisorNotFound
		}

		return nil, errors.Wrap(err, "failed to find supervisor by email")
	}

	return toSupervisorDomain(&supervisorM), nil
}

// FindAdminByEmail retrieves an admin profile by the account e-mail or name.
func (repo *userRepository) FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Joins("User").
		Where(`"User".email = ? OR admins.name = ?`, email, email).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// SearchStudents matches term as a case-insensitive substring of the student
// full name or account e-mail. Results are paginated.
func (repo *userRepository) SearchStudents(ctx context.Context, term string, limit, offset int) ([]*entity.Student, error) {
	like := "%" + term + "%"

	var studentMs []model.StudentModel
	err := repo.db.WithContext(ctx).
		Joins("User").
		Where(`students.full_name ILIKE ? OR "User".email ILIKE ?`, like, like).
		Order("students.full_name").
		Limit(limit).
		Offset(offset).
		Find(&studentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search students")
	}

	students := make([]*entity.Student, 0, len(studentMs))
	for i := range studentMs {
		students = append(students, toStudentDomain(&studentMs[i]))
	}

	return students, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) model.UserModel {
	return model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
	}
}

func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:            data.ID,
		User:          *toUserDomain(&data.User),
		FullName:      data.FullName,
		RG:            data.RG,
		Phone:         data.Phone,
		WhatsApp:      data.WhatsApp,
		AcademicID:    data.AcademicID,
		AcademicClass: data.AcademicClass,
		Address: entity.Address{
			Street:         data.AddrStreet,
			Number:         data.AddrNumber,
			AdditionalInfo: data.AddrAdditionalInfo,
			District:       data.AddrDistrict,
			City:           data.AddrCity,
			State:          data.AddrState,
			PostalCode:     data.AddrPostalCode,
		},
	}
}

func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:                 data.ID,
		UserID:             data.User.ID,
		User:               fromUserDomain(&data.User),
		FullName:           data.FullName,
		RG:                 data.RG,
		Phone:              data.Phone,
		WhatsApp:           data.WhatsApp,
		AcademicID:         data.AcademicID,
		AcademicClass:      data.AcademicClass,
		AddrStreet:         data.Address.Street,
		AddrNumber:         data.Address.Number,
		AddrAdditionalInfo: data.Address.AdditionalInfo,
		AddrDistrict:       data.Address.District,
		AddrCity:           data.Address.City,
		AddrState:          data.Address.State,
		AddrPostalCode:     data.Address.PostalCode,
	}
}

func toSupervisorDomain(data *model.SupervisorModel) *entity.Supervisor {
	if data == nil {
		return nil
	}

	return &entity.Supervisor{
		ID:   data.ID,
		User: *toUserDomain(&data.User),
		Name: data.Name,
	}
}

func fromSupervisorDomain(data *entity.Supervisor) *model.SupervisorModel {
	if data == nil {
		return nil
	}

	return &model.SupervisorModel{
		ID:     data.ID,
		UserID: data.User.ID,
		User:   fromUserDomain(&data.User),
		Name:   data.Name,
	}
}

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:   data.ID,
		User: *toUserDomain(&data.User),
		Name: data.Name,
	}
}

func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:     data.ID,
		UserID: data.User.ID,
		User:   fromUserDomain(&data.User),
		Name:   data.Name,
	}
}
