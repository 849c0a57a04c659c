package s3client

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"text2label.com/fex/logger"
)

type EnvironmentConfig struct {
	BucketName  string `envconfig:"NER_COMN_STORAGE_CONTAINER_NAME" required:"true"`
	Env         string `envconfig:"T2L_ENV" required:"true"`
	Region      string `envconfig:"NER_COMN_AWS_REGION_NAME" required:"true"`
	AwsEndpoint string `envconfig:"NER_COMN_AWS_ENDPOINT_URL" default:""`
	AccessKeyID string `envconfig:"NER_COMN_AWS_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"NER_COMN_AWS_ACCESS_KEY" default:""`
}

type Client struct {
	mu   sync.Mutex
	sess *session.Session
	env  EnvironmentConfig
}

var clientLogger = logger.NewLogger("S3Client")
var sdkLogger = logger.NewLogger("S3-SDK")

func New() (*Client, error) {
	var env EnvironmentConfig
	if err := envconfig.Process("", &env); err != nil {
		clientLogger.Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}
	client := Client{env: env}
	if err := client.acquireNewSession(); err != nil {
		return nil, err
	}
	return &client, nil
}

// Upload stores the rendered feature file under key, refreshing the session
// once on failure.
func (client *Client) Upload(data string, key string) error {
	params := &s3manager.UploadInput{
		Bucket: &client.env.BucketName,
		Key:    &key,
		Body:   strings.NewReader(data),
	}
	sess := client.session()
	if _, err := client.upload(sess, params); err == nil {
		return nil
	}
	sess, err := client.refreshSession()
	if err != nil {
		return err
	}
	params.Body = strings.NewReader(data)
	_, err = client.upload(sess, params)
	return err
}

func (client *Client) Download(key string) ([]byte, error) {
	params := &s3.GetObjectInput{
		Bucket: &client.env.BucketName,
		Key:    &key,
	}
	sess := client.session()
	res, err := client.download(sess, params)
	if err == nil {
		return res, nil
	}
	sess, err = client.refreshSession()
	if err != nil {
		return nil, err
	}
	return client.download(sess, params)
}

func (client *Client) Close() {}

func (client *Client) upload(sess *session.Session, params *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
	fexLogger := clientLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	sdkLog := sdkLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	uploader := s3manager.NewUploader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))
	fexLogger.Debug().Msg("Uploading the file")
	return uploader.Upload(params)
}

func (client *Client) download(sess *session.Session, params *s3.GetObjectInput) ([]byte, error) {
	fexLogger := clientLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	sdkLog := sdkLogger.With().
		Str("key", *params.Key).
		Str("bucket", *params.Bucket).Logger()

	downloader := s3manager.NewDownloader(sess.Copy(&aws.Config{Logger: getLogger(sdkLog)}))
	buf := aws.NewWriteAtBuffer([]byte{})

	fexLogger.Debug().Msg("Downloading file")
	size, err := downloader.Download(buf, params)
	if err != nil {
		fexLogger.Error().Err(err).Msg("Failed to download file")
		return nil, err
	}
	fexLogger.Debug().Msgf("Downloaded %v bytes", size)
	return buf.Bytes(), nil
}

func (client *Client) session() *session.Session {
	client.mu.Lock()
	defer client.mu.Unlock()
	return client.sess
}

func (client *Client) refreshSession() (*session.Session, error) {
	clientLogger.Info().Msg("Refreshing S3 session after error")
	if err := client.acquireNewSession(); err != nil {
		return nil, err
	}
	return client.session(), nil
}

// acquireNewSession tries the instance role first and falls back to static
// environment credentials, validating either with an STS identity call.
func (client *Client) acquireNewSession() error {
	sess, err := session.NewSession(client.createInstanceConfig())
	if err == nil {
		if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err == nil {
			client.storeSession(sess)
			clientLogger.Info().Msg("S3 session successfully initialized using instance role")
			return nil
		}
	}
	clientLogger.Info().Msg("Could not initialize S3 session using instance role, trying env credentials")

	sess, err = session.NewSession(client.createEnvConfig())
	if err != nil {
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return err
	}
	if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err != nil {
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return errors.New("could not initialize S3 session")
	}
	client.storeSession(sess)
	clientLogger.Info().Msg("S3 session successfully initialized using env credentials")
	return nil
}

func (client *Client) storeSession(sess *session.Session) {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.sess = sess
}

func (client *Client) createInstanceConfig() *aws.Config {
	return &aws.Config{
		Region:     aws.String(client.env.Region),
		MaxRetries: aws.Int(4),
		LogLevel:   aws.LogLevel(aws.LogDebug),
	}
}

func (client *Client) createEnvConfig() *aws.Config {
	creds := credentials.NewStaticCredentials(
		client.env.AccessKeyID,
		client.env.AccessKey,
		"")
	cfg := aws.NewConfig().
		WithRegion(client.env.Region).
		WithMaxRetries(4).
		WithCredentials(creds).
		WithLogLevel(aws.LogDebug)

	inDevEnv := client.env.Env == "dev"
	if inDevEnv && len(client.env.AwsEndpoint) > 0 {
		cfg = cfg.WithEndpoint(client.env.AwsEndpoint).
			WithS3ForcePathStyle(true)
	}
	return cfg
}

type s3Logger struct {
	fexLogger zerolog.Logger
}

func getLogger(fexLogger zerolog.Logger) *s3Logger {
	return &s3Logger{fexLogger}
}

func (logger *s3Logger) Log(v ...interface{}) {
	logger.fexLogger.Debug().Msg(fmt.Sprint(v...))
}
