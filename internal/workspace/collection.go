package workspace

import "sync"

// Entity — элемент коллекции с серверным идентификатором.
type Entity interface {
	EntityID() int64
}

// Collection — кэш подтверждённого состояния одной коллекции.
//
// Мутации соответствуют ровно трём подтверждённым исходам: загрузка
// списка (ReplaceAll), подтверждённое создание (Append), подтверждённое
// обновление (ReplaceByID) и подтверждённое удаление (RemoveByID).
// Snapshot отдаёт копию среза: читатели не видят последующих мутаций.
type Collection[T Entity] struct {
	mu    sync.RWMutex
	items []T
}

// ReplaceAll замещает содержимое результатом list-запроса.
func (c *Collection[T]) ReplaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Snapshot возвращает копию текущего содержимого.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// Append добавляет запись, возвращённую сервером при создании.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

// ReplaceByID замещает запись с тем же id серверной версией.
// Возвращает false, если записи нет, — коллекция не меняется.
func (c *Collection[T]) ReplaceByID(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			return true
		}
	}

	return false
}

// RemoveByID фильтрует запись после подтверждённого удаления.
func (c *Collection[T]) RemoveByID(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}

	return false
}

// ByID возвращает запись по id (копию) и признак наличия.
func (c *Collection[T]) ByID(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.items[i].EntityID() == id {
			return c.items[i], true
		}
	}

	var zero T

	return zero, false
}

// Len — количество записей.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
