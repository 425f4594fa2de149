package api

import (
	"sync"
	"time"

	"paperreward/internal/model"
)

// 数据集解析后在内存中保留的时长，过期后需要重新上传
const datasetTTL = 2 * time.Hour

type cachedDataset struct {
	dataset   *model.Dataset
	fileName  string
	expiresAt time.Time
}

// datasetCache 上传 ID → 已解析数据集的内存缓存
// 查询引擎本身是纯函数，缓存由调用层持有
type datasetCache struct {
	mu    sync.Mutex
	items map[string]cachedDataset
}

func newDatasetCache() *datasetCache {
	return &datasetCache{
		items: make(map[string]cachedDataset),
	}
}

func (s *datasetCache) put(id, fileName string, ds *model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	s.items[id] = cachedDataset{
		dataset:   ds,
		fileName:  fileName,
		expiresAt: time.Now().Add(datasetTTL),
	}
}

func (s *datasetCache) get(id string) (cachedDataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[id]
	if !ok {
		return cachedDataset{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, id)
		return cachedDataset{}, false
	}
	return v, true
}

func (s *datasetCache) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
