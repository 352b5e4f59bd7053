/*
Package inmem implements the store DAO interface. This implementation is meant
to help get an instance of Daedalus up and running quickly without a need to
setup a dedicated object store. Since the current implementation is not scalable,
it is recommended for test environments only.
*/
package inmem
