package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"usersvc/internal/models"
	"usersvc/internal/utils"
)

var (
	// ErrInvalidID — идентификатор не похож на nanoid; до запроса в БД дело не доходит.
	ErrInvalidID = errors.New("invalid user id")
	ErrNotFound  = errors.New("user not found")
	// ErrEmailTaken — нарушение уникального индекса email.
	ErrEmailTaken = errors.New("email already exists")
)

// PageQuery описывает фильтр и порядок выборки страницы пользователей.
// Email (точное совпадение) имеет приоритет над Search (подстрока в name или email).
type PageQuery struct {
	Search    string
	Email     string
	SortField string
	Order     string
	Offset    int
	Limit     int
}

// UserStore — шлюз к хранилищу пользователей поверх явно переданного подключения.
type UserStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Ready возвращает ошибку, если подключение к БД сейчас недоступно.
func (s *UserStore) Ready() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Create сохраняет нового пользователя; name и email нормализуются перед записью.
func (s *UserStore) Create(name, email string) (models.User, error) {
	u := models.User{
		Name:  strings.TrimSpace(name),
		Email: utils.NormalizeEmail(email),
	}
	if err := s.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *UserStore) FindByID(id string) (models.User, error) {
	if !utils.ValidNanoID(id) {
		return models.User{}, ErrInvalidID
	}
	var u models.User
	err := s.db.Select("id", "name", "email", "created_at").
		Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

// FindPage возвращает страницу пользователей и общее число записей под фильтром.
func (s *UserStore) FindPage(q PageQuery) ([]models.User, int64, error) {
	total, err := s.Count(q)
	if err != nil {
		return nil, 0, err
	}

	var users []models.User
	err = s.scope(q).
		Select("id", "name", "email", "created_at").
		Order(q.SortField + " " + q.Order).
		Offset(q.Offset).Limit(q.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Count возвращает число записей, попадающих под фильтр запроса.
func (s *UserStore) Count(q PageQuery) (int64, error) {
	var total int64
	if err := s.scope(q).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// UpdateByID применяет только переданные поля; nil означает «не трогать».
func (s *UserStore) UpdateByID(id string, name, email *string) (models.User, error) {
	if !utils.ValidNanoID(id) {
		return models.User{}, ErrInvalidID
	}

	vals := map[string]interface{}{}
	if name != nil {
		vals["name"] = strings.TrimSpace(*name)
	}
	if email != nil {
		vals["email"] = utils.NormalizeEmail(*email)
	}

	tx := s.db.Model(&models.User{}).Where("id = ?", id).Updates(vals)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.User{}, ErrNotFound
	}
	return s.FindByID(id)
}

// DeleteByID удаляет запись; ErrNotFound, если удалять было нечего.
func (s *UserStore) DeleteByID(id string) error {
	if !utils.ValidNanoID(id) {
		return ErrInvalidID
	}
	tx := s.db.Where("id = ?", id).Delete(&models.User{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) scope(q PageQuery) *gorm.DB {
	tx := s.db.Model(&models.User{})
	if q.Email != "" {
		return tx.Where("email = ?", utils.NormalizeEmail(q.Email))
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		return tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	return tx
}
