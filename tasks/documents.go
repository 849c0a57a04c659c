package tasks

import (
	"text2label.com/fex/redis"
	"text2label.com/fex/utils/maps"
)

const DocumentsDB redis.DB = 0

type DocumentTask struct {
	maps.BaseDocument
	FailedTasks  []string            `json:"failed_tasks"`
	FailedChunks map[string][]string `json:"failed_chunks"`
}

type DocumentTaskCached struct {
	maps.BaseDocument
	DocInfo     map[string]interface{} `json:"document_info"`
	FailedTasks []string               `json:"failed_tasks"`
	JobID       string                 `json:"job_id"`
	WorkType    string                 `json:"work_type"`
}

type DocumentTasks struct {
	client redis.Client
}

func (tasks DocumentTasks) Get(redisKey string) (*DocumentTask, error) {
	var task DocumentTask
	err := tasks.client.GetPartialDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks DocumentTasks) GetCached(redisKey string) (*DocumentTaskCached, error) {
	var task DocumentTaskCached
	err := tasks.client.GetPartialDocument(cachedPropertiesKey(redisKey), &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update rewrites both the document record and its cached-properties twin:
// readers of the cached record must observe the same failure state.
func (tasks DocumentTasks) Update(redisKey string, updateFunc func(task *DocumentTask)) (err error) {
	releaseLock, err := tasks.client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		releaseErr := releaseLock()
		if err == nil {
			err = releaseErr
		}
	}()

	var task DocumentTask
	if err = tasks.client.GetPartialDocument(redisKey, &task); err != nil {
		return err
	}
	if err = maps.ApplyUpdates(&task, func() { updateFunc(&task) }); err != nil {
		return err
	}
	var cached DocumentTaskCached
	if err = maps.CopyValues(&task, &cached); err != nil {
		return err
	}
	if err = tasks.client.SaveDoc(redisKey, &task); err != nil {
		return err
	}
	return tasks.client.SaveDoc(cachedPropertiesKey(redisKey), &cached)
}
